package sha3

import (
	"bytes"
	"encoding/hex"

	"github.com/hashicorp/go-multierror"
)

// NIST known-answer vectors used by SelfTest.
var selfTestVectors = []struct {
	name string
	msg  []byte
	want string
}{
	{"SHA3-224", nil,
		"6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
	{"SHA3-256", nil,
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	{"SHA3-384", nil,
		"0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee" +
			"983a2ac3713831264adb47fb6bd1e058d5f004"},
	{"SHA3-512", nil,
		"a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80" +
			"a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	{"SHA3-224", []byte("abc"),
		"e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"},
	{"SHA3-256", []byte("abc"),
		"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	{"SHA3-384", []byte("abc"),
		"ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e4" +
			"9be4b298d88cea927ac7f539f1edf228376d25"},
	{"SHA3-512", []byte("abc"),
		"b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d271" +
			"2e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	{"SHA3-224", []byte{0},
		"bdd5167212d2dc69665f5a8875ab87f23d5ce7849132f56371a19096"},
	{"SHA3-512", []byte{0},
		"7127aab211f82a18d06cf7578ff49d5089017944139aa60d8bee057811a15f" +
			"b55a53887600a3eceba004de51105139f32506fe5b53e1913bfa6b32e716fe97da"},
}

// SelfTest checks every registered SHA-3 instance against known-answer
// vectors and returns nil if all of them produce the published digests.
// On failure the returned error lists each failing instance.
func SelfTest() error {
	var result *multierror.Error
	for _, vec := range selfTestVectors {
		params := ParamsFromName(vec.name)
		if params == nil {
			result = multierror.Append(result,
				errorf("selftest: %s is not registered", vec.name))
			continue
		}
		want, err := hex.DecodeString(vec.want)
		if err != nil {
			result = multierror.Append(result, wrapErrorf(err,
				"selftest: bad %s vector", vec.name))
			continue
		}
		got := params.Sum(vec.msg)
		if !bytes.Equal(got, want) {
			result = multierror.Append(result, errorf(
				"selftest: %s(%x) = %x, expected %x",
				vec.name, vec.msg, got, want))
			continue
		}
		log.Logf("selftest: %s ok for %d-byte message",
			vec.name, len(vec.msg))
	}
	return result.ErrorOrNil()
}
