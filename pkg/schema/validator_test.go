package schema

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPort() map[string]any {
	return map[string]any{
		"@odata.type":                "#NetworkPort.v1_1_0.NetworkPort",
		"Id":                         "1",
		"Name":                       "Physical port 1",
		"PhysicalPortNumber":         "1",
		"ActiveLinkTechnology":       "Ethernet",
		"AssociatedNetworkAddresses": []string{"AA:BB:CC:DD:EE:FF"},
		"@odata.context":             "/redfish/v1/$metadata#NetworkPort.NetworkPort",
		"@odata.id":                  "/redfish/v1/Chassis/30303437-3034-4D32-3230-313133364752/NetworkAdapters/1/NetworkPorts/1",
	}
}

func TestNewLoadsEmbeddedSchemas(t *testing.T) {
	t.Parallel()

	v, err := New("")
	require.NoError(t, err)

	assert.Equal(t, []string{"NetworkPort", "NetworkPortCollection"}, v.Names())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	v, err := New("")
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr bool
	}{
		{
			name:   "valid ethernet port",
			mutate: func(map[string]any) {},
		},
		{
			name: "missing Id",
			mutate: func(m map[string]any) {
				delete(m, "Id")
			},
			wantErr: true,
		},
		{
			name: "unknown link technology",
			mutate: func(m map[string]any) {
				m["ActiveLinkTechnology"] = "Token Ring"
			},
			wantErr: true,
		},
		{
			name: "unexpected property",
			mutate: func(m map[string]any) {
				m["Speed"] = 100
			},
			wantErr: true,
		},
		{
			name: "addresses not an array",
			mutate: func(m map[string]any) {
				m["AssociatedNetworkAddresses"] = "AA:BB:CC:DD:EE:FF"
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := validPort()
			tc.mutate(doc)

			err := v.Validate(doc, "NetworkPort")
			if !tc.wantErr {
				require.NoError(t, err)

				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "NetworkPort", verr.Schema)
			assert.NotEmpty(t, verr.Details)
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	t.Parallel()

	v, err := New("")
	require.NoError(t, err)

	err = v.Validate(validPort(), "Chassis")
	require.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestNewFromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"Thing.json": {Data: []byte(`{"type":"object","required":["Id"]}`)},
		"README.md":  {Data: []byte("not a schema")},
	}

	v, err := NewFromFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"Thing"}, v.Names())

	require.NoError(t, v.Validate(map[string]any{"Id": "x"}, "Thing"))
	require.Error(t, v.Validate(map[string]any{}, "Thing"))
}

func TestNewFromFSInvalidSchema(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"Broken.json": {Data: []byte(`{"type": 12}`)},
	}

	_, err := NewFromFS(fsys)
	require.Error(t, err)
}

func TestNewOverridesFromDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NetworkPort.json"), []byte(`{"type":"object","required":["Oem"]}`), 0o600))

	v, err := New(dir)
	require.NoError(t, err)

	require.Error(t, v.Validate(validPort(), "NetworkPort"))
}
