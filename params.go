package sha3

// Parameters of a SHA-3 instance.
type Params struct {
	Rate      uint32 // bits absorbed/squeezed per permutation call
	OutputLen uint32 // length of the digest in bits
}

// The four registered SHA-3 parameterizations.  For each of them the
// capacity 1600-Rate equals twice the output length.
var (
	SHA3_224 = &Params{Rate: 1152, OutputLen: 224}
	SHA3_256 = &Params{Rate: 1088, OutputLen: 256}
	SHA3_384 = &Params{Rate: 832, OutputLen: 384}
	SHA3_512 = &Params{Rate: 576, OutputLen: 512}
)

var registry = []struct {
	name   string
	params *Params
}{
	{"SHA3-224", SHA3_224},
	{"SHA3-256", SHA3_256},
	{"SHA3-384", SHA3_384},
	{"SHA3-512", SHA3_512},
}

// ListNames returns the names of the registered SHA-3 instances.
func ListNames() []string {
	ret := make([]string, len(registry))
	for i, entry := range registry {
		ret[i] = entry.name
	}
	return ret
}

// ParamsFromName returns the parameters of the named SHA-3 instance
// (eg. "SHA3-256") and nil if there is no instance with the given name.
func ParamsFromName(name string) *Params {
	for _, entry := range registry {
		if entry.name == name {
			return entry.params
		}
	}
	return nil
}

// Name returns the name of the SHA-3 instance with these parameters,
// if it has one.
func (p *Params) Name() string {
	for _, entry := range registry {
		if entry.params.Rate == p.Rate &&
			entry.params.OutputLen == p.OutputLen {
			return entry.name
		}
	}
	return "unnamed"
}

// Capacity returns the capacity in bits: the part of the state the
// sponge never exposes.
func (p *Params) Capacity() uint32 {
	return stateBits - p.Rate
}

// Size returns the length of the digest in bytes.
func (p *Params) Size() int {
	return int(p.OutputLen) / 8
}
