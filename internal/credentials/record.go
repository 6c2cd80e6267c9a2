package credentials

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"slices"
	"sort"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DefaultPath is where the credentials file is looked up when no path is configured.
const DefaultPath = "secrets.json"

// Known keys of a credentials record.
const (
	KeyDatabaseURL  = "databaseURL"
	KeyAPIKey       = "apiKey"
	KeyType         = "type"
	KeyProjectID    = "project_id"
	KeyClientEmail  = "client_email"
	KeyPrivateKey   = "private_key"
	KeyPrivateKeyID = "private_key_id"
	KeyTokenURI     = "token_uri"
)

var secretKeys = []string{KeyPrivateKey, KeyPrivateKeyID, KeyAPIKey}

// Record is a credentials file held as an open map of raw JSON values.
// Values keep the exact bytes they had in the file.
type Record map[string]jx.Raw

// Load reads and parses the credentials file at path.
func Load(path string) (Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newKindError(ErrNotFound, path, err)
		}
		return nil, errors.Wrapf(err, "read %s", path)
	}

	rec, err := Parse(b)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return rec, nil
}

// Parse decodes b into a Record. b must hold exactly one JSON object.
func Parse(b []byte) (Record, error) {
	if err := jx.DecodeBytes(b).Validate(); err != nil {
		return nil, newKindError(ErrParse, "malformed json", err)
	}

	d := jx.DecodeBytes(b)
	if tt := d.Next(); tt != jx.Object {
		return nil, newKindError(ErrParse, "want object, got "+tt.String(), nil)
	}

	rec := make(Record)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		raw, err := d.Raw()
		if err != nil {
			return err
		}
		// duplicate keys: last one wins
		rec[key] = append(jx.Raw(nil), bytes.TrimSpace(raw)...)
		return nil
	})
	if err != nil {
		return nil, newKindError(ErrParse, "decode object", err)
	}

	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return nil, newKindError(ErrParse, "trailing data after object", err)
	}

	return rec, nil
}

// Keys returns the record's keys in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Str returns the value of key if it is a JSON string.
func (r Record) Str(key string) (string, bool) {
	raw, ok := r[key]
	if !ok || raw.Type() != jx.String {
		return "", false
	}

	s, err := jx.DecodeBytes(raw).Str()
	if err != nil {
		return "", false
	}
	return s, true
}

func (r Record) DatabaseURL() (string, bool) { return r.Str(KeyDatabaseURL) }

// RequireDatabaseURL returns the record's database URL. The URL itself is
// checked by the SDK when the database client is built.
func (r Record) RequireDatabaseURL() (string, error) {
	u, ok := r.DatabaseURL()
	if !ok || u == "" {
		return "", newKindError(ErrInvalidCredentials, `missing "databaseURL"`, nil)
	}
	return u, nil
}

func (r Record) APIKey() (string, bool) { return r.Str(KeyAPIKey) }

func (r Record) ProjectID() (string, bool) { return r.Str(KeyProjectID) }

// MarshalJSON encodes the record with sorted keys and the original raw values.
func (r Record) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	e.ObjStart()
	for _, k := range r.Keys() {
		e.FieldStart(k)
		e.Raw(r[k])
	}
	e.ObjEnd()
	return e.Bytes(), nil
}

// Redacted returns a copy of the record with secret values replaced.
func (r Record) Redacted() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if slices.Contains(secretKeys, k) {
			out[k] = jx.Raw(`"[redacted]"`)
			continue
		}
		out[k] = v
	}
	return out
}
