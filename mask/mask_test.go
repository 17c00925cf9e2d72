package mask_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rise-and-shine/docview/mask"
)

func pairs(om *orderedmap.OrderedMap[string, any]) [][2]any {
	var out [][2]any
	for p := om.Oldest(); p != nil; p = p.Next() {
		out = append(out, [2]any{p.Key, p.Value})
	}
	return out
}

func TestStructToOrdMap_NilInput(t *testing.T) {
	assert.Nil(t, mask.StructToOrdMap(nil))
}

func TestStructToOrdMap_MaskedFields(t *testing.T) {
	type Request struct {
		Username string
		Password string  `mask:"true"`
		PIN      int     `mask:"true"`
		Ratio    float64 `mask:"true"`
		Tokens   []byte  `mask:"true"`
		Empty    string  `mask:"true"`
		Ptr      *string `mask:"true"`
	}

	secret := "s3cr3t"
	tests := []struct {
		name     string
		input    any
		expected [][2]any
	}{
		{
			name:  "values are masked by kind",
			input: Request{Username: "john", Password: "x", PIN: 1234, Ratio: 0.5, Tokens: []byte("t"), Ptr: &secret},
			expected: [][2]any{
				{"Username", "john"},
				{"Password", "***masked-string***"},
				{"PIN", "***masked-int***"},
				{"Ratio", "***masked-float***"},
				{"Tokens", "***masked-slice***"},
				{"Empty", ""},
				{"Ptr", "***masked-string***"},
			},
		},
		{
			name:  "zero values stay visible",
			input: &Request{Username: "jane"},
			expected: [][2]any{
				{"Username", "jane"},
				{"Password", ""},
				{"PIN", 0},
				{"Ratio", float64(0)},
				{"Tokens", nil},
				{"Empty", ""},
				{"Ptr", nil},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pairs(mask.StructToOrdMap(tc.input)))
		})
	}
}

func TestStructToOrdMap_FieldNames(t *testing.T) {
	type Config struct {
		Host    string `json:"host"    yaml:"ignored"`
		Port    int    `yaml:"port"`
		Plain   bool
		Skipped string `json:"-"`
		Omit    string `json:",omitempty"`
	}

	om := mask.StructToOrdMap(Config{Host: "localhost", Port: 5432, Plain: true, Skipped: "x", Omit: "y"})

	assert.Equal(t, [][2]any{
		{"host", "localhost"},
		{"port", 5432},
		{"Plain", true},
		{"Omit", "y"},
	}, pairs(om))
}

func TestStructToOrdMap_NestedStructs(t *testing.T) {
	type Credentials struct {
		User     string `yaml:"user"`
		Password string `yaml:"password" mask:"true"`
	}
	type Storage struct {
		Endpoint string       `yaml:"endpoint"`
		Creds    Credentials  `yaml:"creds"`
		Backup   *Credentials `yaml:"backup"`
	}
	type Config struct {
		Storage Storage `yaml:"storage"`
	}

	om := mask.StructToOrdMap(Config{Storage: Storage{
		Endpoint: "minio:9000",
		Creds:    Credentials{User: "admin", Password: "pw"},
	}})

	assert.Equal(t, [][2]any{
		{"storage.endpoint", "minio:9000"},
		{"storage.creds.user", "admin"},
		{"storage.creds.password", "***masked-string***"},
		{"storage.backup", (*Credentials)(nil)},
	}, pairs(om))
}

func TestStructToOrdMap_MarshalersAreLeaves(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	type Record struct {
		ID        int64     `json:"id"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	om := mask.StructToOrdMap(Record{ID: 7, UpdatedAt: ts})
	require.Equal(t, 2, om.Len())

	v, ok := om.Get("updated_at")
	require.True(t, ok)
	assert.Equal(t, ts, v)
}

func TestStructToOrdMap_NonStruct(t *testing.T) {
	om := mask.StructToOrdMap(42)
	v, ok := om.Get("")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}
