package request

import (
	"fmt"

	"github.com/dash-protocol/dash-go/pkg/version"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

// BaseRequest is the data included in every request: the client being
// impersonated and the secret the server checks.
type BaseRequest struct {
	// GameVersion is sent as gameVersion. The server ignores its value.
	GameVersion version.GameVersion

	// BinaryVersion is sent as binaryVersion. The server ignores its value.
	BinaryVersion version.GameVersion

	// Secret identifies a genuine client. A wrong secret fails the request.
	Secret string
}

// Presets matching the official clients.
var (
	GD21 = mustBase("2.1")
	GD22 = mustBase("2.2")
)

// DefaultBase is the base used by the request constructors.
var DefaultBase = GD22

// BaseFromClient builds the base data of a client manifest.
func BaseFromClient(m *version.ClientManifest) BaseRequest {
	return BaseRequest{
		GameVersion:   m.Game,
		BinaryVersion: m.Binary,
		Secret:        m.Secret,
	}
}

// LoadBase loads the base data of the client release ver (e.g., "2.1").
func LoadBase(ver string) (BaseRequest, error) {
	m, err := version.LoadClient(ver)
	if err != nil {
		return BaseRequest{}, fmt.Errorf("failed to load client %s: %w", ver, err)
	}
	return BaseFromClient(m), nil
}

func mustBase(ver string) BaseRequest {
	b, err := LoadBase(ver)
	if err != nil {
		panic(err)
	}
	return b
}

func (b BaseRequest) fields() []wire.Field {
	return []wire.Field{
		wire.F("gameVersion", wire.Uint8(b.GameVersion.Wire())),
		wire.F("binaryVersion", wire.Uint8(b.BinaryVersion.Wire())),
		wire.F("secret", wire.String(b.Secret)),
	}
}
