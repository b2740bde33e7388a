// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.
// Package openssh assembles and opens the openssh-key-v1 private key
// container: PEM armor, the check-int pair, comment storage, sequential
// padding, and optional passphrase encryption with the OpenSSH defaults
// (aes256-ctr over a bcrypt KDF, 16-byte salt, 16 rounds).
package openssh

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/dchest/bcrypt_pbkdf"
	gossh "golang.org/x/crypto/ssh"
)

const (
	pemType   = "OPENSSH PRIVATE KEY"
	keyMagic  = "openssh-key-v1\x00"
	cipherAES = "aes256-ctr"
	kdfBcrypt = "bcrypt"

	saltLen    = 16
	kdfRounds  = 16
	aesKeyLen  = 32
	plainAlign = 8
)

var (
	// ErrNotOpenSSH indicates input that is not an openssh-key-v1 container.
	ErrNotOpenSSH = errors.New("openssh: not an openssh-key-v1 private key")

	// ErrUnsupportedCipher indicates a cipher or KDF this package cannot open.
	ErrUnsupportedCipher = errors.New("openssh: unsupported cipher or kdf")

	// ErrPassphraseRequired indicates an encrypted container opened without
	// a passphrase.
	ErrPassphraseRequired = errors.New("openssh: key is encrypted, passphrase required")

	// ErrIncorrectPassphrase indicates a decryption whose check ints disagree.
	ErrIncorrectPassphrase = errors.New("openssh: incorrect passphrase")

	// ErrBadPadding indicates private-block padding that is not the
	// sequential 1, 2, 3, ... OpenSSH requires.
	ErrBadPadding = errors.New("openssh: bad private block padding")
)

// Container is an opened private key container: the public blob verbatim and
// the decrypted per-key block after the check ints (type-specific fields,
// stored comment, padding).
type Container struct {
	PublicBlob   []byte
	PrivateBlock []byte
}

// envelope is the outer wire structure following the magic bytes.
type envelope struct {
	CipherName   string
	KdfName      string
	KdfOpts      string
	NumKeys      uint32
	PubKey       []byte
	PrivKeyBlock []byte
}

// kdfOptions is the packed contents of the KdfOpts string for bcrypt.
type kdfOptions struct {
	Salt   []byte
	Rounds uint32
}

// checkHeader is the leading pair of the private block; both values must be
// equal after decryption.
type checkHeader struct {
	Check1 uint32
	Check2 uint32
	Rest   []byte `ssh:"rest"`
}

// Marshal assembles a PEM-armored container around the given public blob and
// private fields, storing the comment and encrypting when a passphrase is
// given.
func Marshal(publicBlob, privateFields []byte, comment string, passphrase []byte) ([]byte, error) {
	check := make([]byte, 4)
	if _, err := rand.Read(check); err != nil {
		return nil, fmt.Errorf("openssh: checkint: %w", err)
	}
	checkint := binary.BigEndian.Uint32(check)

	var block bytes.Buffer
	block.Write(gossh.Marshal(struct{ C1, C2 uint32 }{checkint, checkint}))
	block.Write(privateFields)
	block.Write(gossh.Marshal(struct{ Comment string }{comment}))

	env := envelope{
		CipherName: "none",
		KdfName:    "none",
		NumKeys:    1,
		PubKey:     publicBlob,
	}

	align := plainAlign
	if len(passphrase) > 0 {
		align = aes.BlockSize
	}
	for i := byte(1); block.Len()%align != 0; i++ {
		block.WriteByte(i)
	}
	private := block.Bytes()

	if len(passphrase) > 0 {
		salt := make([]byte, saltLen)
		if _, err := rand.Read(salt); err != nil {
			return nil, fmt.Errorf("openssh: salt: %w", err)
		}
		stream, err := kdfStream(passphrase, salt, kdfRounds)
		if err != nil {
			return nil, err
		}
		stream.XORKeyStream(private, private)
		env.CipherName = cipherAES
		env.KdfName = kdfBcrypt
		env.KdfOpts = string(gossh.Marshal(kdfOptions{Salt: salt, Rounds: kdfRounds}))
	}
	env.PrivKeyBlock = private

	body := append([]byte(keyMagic), gossh.Marshal(env)...)
	return pem.EncodeToMemory(&pem.Block{Type: pemType, Bytes: body}), nil
}

// Open unwraps a PEM-armored container, decrypts it if needed, verifies the
// check ints, and returns the public blob plus the remaining private block.
func Open(data, passphrase []byte) (*Container, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemType {
		return nil, ErrNotOpenSSH
	}
	if !bytes.HasPrefix(block.Bytes, []byte(keyMagic)) {
		return nil, fmt.Errorf("%w: bad magic", ErrNotOpenSSH)
	}

	var env envelope
	if err := gossh.Unmarshal(block.Bytes[len(keyMagic):], &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotOpenSSH, err)
	}
	if env.NumKeys != 1 {
		return nil, fmt.Errorf("%w: %d keys, want 1", ErrNotOpenSSH, env.NumKeys)
	}

	private := env.PrivKeyBlock
	switch {
	case env.CipherName == "none" && env.KdfName == "none":
		// Plaintext block.
	case env.CipherName == cipherAES && env.KdfName == kdfBcrypt:
		if len(passphrase) == 0 {
			return nil, ErrPassphraseRequired
		}
		var opts kdfOptions
		if err := gossh.Unmarshal([]byte(env.KdfOpts), &opts); err != nil {
			return nil, fmt.Errorf("%w: kdf options: %v", ErrNotOpenSSH, err)
		}
		stream, err := kdfStream(passphrase, opts.Salt, int(opts.Rounds))
		if err != nil {
			return nil, err
		}
		decrypted := make([]byte, len(private))
		stream.XORKeyStream(decrypted, private)
		private = decrypted
	default:
		return nil, fmt.Errorf("%w: cipher %q kdf %q", ErrUnsupportedCipher, env.CipherName, env.KdfName)
	}

	var check checkHeader
	if err := gossh.Unmarshal(private, &check); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotOpenSSH, err)
	}
	if check.Check1 != check.Check2 {
		if env.CipherName != "none" {
			return nil, ErrIncorrectPassphrase
		}
		return nil, fmt.Errorf("%w: check ints disagree", ErrNotOpenSSH)
	}

	return &Container{PublicBlob: env.PubKey, PrivateBlock: check.Rest}, nil
}

// IsPrivateKey reports whether data looks like a PEM-armored openssh-key-v1
// container. It does not validate the contents.
func IsPrivateKey(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil && block.Type == pemType
}

// CheckPadding verifies the sequential padding bytes that trail the last
// field of the private block.
func CheckPadding(pad []byte) error {
	if len(pad) >= aes.BlockSize {
		return fmt.Errorf("%w: %d padding bytes", ErrBadPadding, len(pad))
	}
	for i, b := range pad {
		if b != byte(i+1) {
			return fmt.Errorf("%w: byte %d is 0x%02x", ErrBadPadding, i, b)
		}
	}
	return nil
}

// kdfStream derives the aes256-ctr key stream for one container.
func kdfStream(passphrase, salt []byte, rounds int) (cipher.Stream, error) {
	material, err := bcrypt_pbkdf.Key(passphrase, salt, rounds, aesKeyLen+aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("openssh: kdf: %w", err)
	}
	c, err := aes.NewCipher(material[:aesKeyLen])
	if err != nil {
		return nil, fmt.Errorf("openssh: %w", err)
	}
	return cipher.NewCTR(c, material[aesKeyLen:]), nil
}
