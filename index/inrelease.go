package index

import (
	"fmt"
	"io"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/clearsign"
)

// VerifyInRelease checks the clearsign signature of an InRelease file
// against the armored keyring and returns the enclosed Release text.
// It fails if no clearsigned block is found or if the signature does
// not verify against any key in the keyring.
func VerifyInRelease(data []byte, keyring io.Reader) ([]byte, error) {
	block, _ := clearsign.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no clearsigned block found")
	}

	ring, err := openpgp.ReadArmoredKeyRing(keyring)
	if err != nil {
		return nil, fmt.Errorf("reading keyring: %w", err)
	}

	if _, err := block.VerifySignature(ring, nil); err != nil {
		return nil, fmt.Errorf("signature verification failed: %w", err)
	}
	return block.Plaintext, nil
}

// ParseInRelease verifies a clearsigned InRelease file and parses the
// enclosed Release stanza.
func ParseInRelease(data []byte, keyring io.Reader) (*Release, error) {
	plaintext, err := VerifyInRelease(data, keyring)
	if err != nil {
		return nil, err
	}
	return ParseRelease(string(plaintext))
}
