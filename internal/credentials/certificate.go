package credentials

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"

	"github.com/go-faster/errors"
	"google.golang.org/api/option"
)

const serviceAccountType = "service_account"

// Certificate is a service account credential built from a Record.
// The full record is handed to the SDK untouched.
type Certificate struct {
	ProjectID   string
	ClientEmail string

	json []byte
}

// NewCertificate checks the fields a service account needs to mint tokens
// and keeps the record's JSON for the SDK.
func NewCertificate(rec Record) (*Certificate, error) {
	if t, _ := rec.Str(KeyType); t != serviceAccountType {
		return nil, newKindError(ErrInvalidCredentials, `"type" must be "service_account"`, nil)
	}

	email, ok := rec.Str(KeyClientEmail)
	if !ok || email == "" {
		return nil, newKindError(ErrInvalidCredentials, `missing "client_email"`, nil)
	}

	pemKey, ok := rec.Str(KeyPrivateKey)
	if !ok || pemKey == "" {
		return nil, newKindError(ErrInvalidCredentials, `missing "private_key"`, nil)
	}

	if _, err := parsePrivateKey([]byte(pemKey)); err != nil {
		return nil, newKindError(ErrInvalidCredentials, `bad "private_key"`, err)
	}

	if uri, ok := rec.Str(KeyTokenURI); !ok || uri == "" {
		return nil, newKindError(ErrInvalidCredentials, `missing "token_uri"`, nil)
	}

	b, err := rec.MarshalJSON()
	if err != nil {
		return nil, err
	}

	projectID, _ := rec.ProjectID()

	return &Certificate{
		ProjectID:   projectID,
		ClientEmail: email,
		json:        b,
	}, nil
}

// ClientOption returns the option that passes this certificate to Google clients.
func (c *Certificate) ClientOption() option.ClientOption {
	return option.WithCredentialsJSON(c.json)
}

func parsePrivateKey(b []byte) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, errors.New("no PEM block")
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "parse key")
	}
	return key, nil
}
