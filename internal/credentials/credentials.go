package credentials

import (
	"checkout-client/pkg/errors"
)

// Mode selects between the PSP sandbox and a live merchant account.
type Mode int

const (
	ModeTest Mode = iota
	ModeLive
)

func (m Mode) String() string {
	if m == ModeTest {
		return "test"
	}
	return "live"
}

// Fixed sandbox credentials published by the PSP for test-mode use.
const (
	SandboxMerchantID = "375917"
	SandboxSecretKey  = "SAIPPUAKAUPPIAS"
)

// Algorithm is the only signing algorithm the PSP accepts.
const Algorithm = "sha256"

// Context holds the account identity and signing secret for one merchant.
// It is a value type with no setters; a constructed Context is safe to
// share across concurrent requests.
type Context struct {
	mode       Mode
	merchantID string
	secretKey  string
}

// New builds a credential context. Test mode ignores the supplied
// credentials and substitutes the fixed sandbox account. Live mode
// requires both merchant id and secret key.
func New(mode Mode, merchantID, secretKey string) (Context, error) {
	if mode == ModeTest {
		return Context{
			mode:       ModeTest,
			merchantID: SandboxMerchantID,
			secretKey:  SandboxSecretKey,
		}, nil
	}

	if merchantID == "" {
		return Context{}, errors.NewMissingCredential("merchant id")
	}
	if secretKey == "" {
		return Context{}, errors.NewMissingCredential("secret key")
	}

	return Context{
		mode:       ModeLive,
		merchantID: merchantID,
		secretKey:  secretKey,
	}, nil
}

func (c Context) Mode() Mode {
	return c.mode
}

func (c Context) MerchantID() string {
	return c.merchantID
}

func (c Context) SecretKey() string {
	return c.secretKey
}

func (c Context) IsTest() bool {
	return c.mode == ModeTest
}

func (c Context) Algorithm() string {
	return Algorithm
}
