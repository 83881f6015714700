package conditional_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golang-fips/openssl-conditional/conditional"
)

func TestSymbolsNonEmpty(t *testing.T) {
	for _, name := range conditional.Names() {
		syms, err := conditional.Symbols(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, syms, name)
		for _, s := range syms {
			assert.NotEmpty(t, s, name)
		}
	}
}

func TestSymbolsUnknownFlag(t *testing.T) {
	syms, err := conditional.Symbols("Cryptography_HAS_NOTHING")
	require.Error(t, err)
	assert.Nil(t, syms)
	assert.True(t, errors.Is(err, conditional.ErrUnknownFlag))
	assert.Contains(t, err.Error(), "Cryptography_HAS_NOTHING")
}

func TestMustSymbolsPanics(t *testing.T) {
	assert.Panics(t, func() { conditional.MustSymbols("") })
}

func TestPSK(t *testing.T) {
	syms, err := conditional.Symbols("Cryptography_HAS_PSK")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"SSL_CTX_use_psk_identity_hint",
		"SSL_CTX_set_psk_server_callback",
		"SSL_CTX_set_psk_client_callback",
	}, syms)
}

func TestFIPS(t *testing.T) {
	syms, err := conditional.Symbols("Cryptography_HAS_FIPS")
	require.NoError(t, err)
	assert.Equal(t, []string{"FIPS_mode_set", "FIPS_mode"}, syms)
}

func TestIsLibreSSLFlagName(t *testing.T) {
	_, ok := conditional.Get("CRYPTOGRAPHY_IS_LIBRESSL")
	assert.True(t, ok)
}

func TestBuildConditionalMapKeys(t *testing.T) {
	m := conditional.BuildConditionalMap()
	names := conditional.Names()
	require.Len(t, m, len(names))
	require.Equal(t, conditional.Len(), len(names))

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate flag %s", n)
		seen[n] = true
		assert.Contains(t, m, n)
	}
}

func TestBuildConditionalMapIdempotent(t *testing.T) {
	assert.Equal(t, conditional.BuildConditionalMap(), conditional.BuildConditionalMap())
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	m := conditional.BuildConditionalMap()
	m[conditional.FlagFIPS][0] = "clobbered"
	delete(m, conditional.FlagPSK)

	syms := conditional.HasFIPS()
	assert.Equal(t, "FIPS_mode_set", syms[0])
	syms[0] = "clobbered"
	assert.Equal(t, "FIPS_mode_set", conditional.HasFIPS()[0])
	assert.Contains(t, conditional.BuildConditionalMap(), conditional.FlagPSK)

	e, ok := conditional.Get(conditional.FlagFIPS)
	require.True(t, ok)
	e.Requires.Probe[0] = "clobbered"
	e2, _ := conditional.Get(conditional.FlagFIPS)
	assert.Equal(t, "FIPS_mode_set", e2.Requires.Probe[0])

	all := conditional.All()
	all[0].Symbols[0] = "clobbered"
	assert.NotEqual(t, "clobbered", conditional.All()[0].Symbols[0])
}

func TestAccessors(t *testing.T) {
	tests := []struct {
		flag string
		fn   func() []string
	}{
		{conditional.FlagIsLibreSSL, conditional.IsLibreSSL},
		{conditional.FlagEC2M, conditional.HasEC2M},
		{conditional.FlagSSL3Method, conditional.HasSSL3Method},
		{conditional.Flag110VerificationParams, conditional.Has110VerificationParams},
		{conditional.FlagSetCertCB, conditional.HasSetCertCB},
		{conditional.FlagSSLST, conditional.HasSSLST},
		{conditional.FlagTLSST, conditional.HasTLSST},
		{conditional.FlagScrypt, conditional.HasScrypt},
		{conditional.FlagEVPPKEYDHX, conditional.HasEVPPKEYDHX},
		{conditional.FlagMemFunctions, conditional.HasMemFunctions},
		{conditional.FlagX509StoreCtxGetIssuer, conditional.HasX509StoreCtxGetIssuer},
		{conditional.FlagED448, conditional.HasED448},
		{conditional.FlagED25519, conditional.HasED25519},
		{conditional.FlagPoly1305, conditional.HasPoly1305},
		{conditional.FlagOneshotEVPDigestSignVerify, conditional.HasOneshotEVPDigestSignVerify},
		{conditional.FlagEVPPKEYGetSetTLSEncodedPoint, conditional.HasEVPPKEYGetSetTLSEncodedPoint},
		{conditional.FlagFIPS, conditional.HasFIPS},
		{conditional.FlagPSK, conditional.HasPSK},
		{conditional.FlagPSKTLSv13, conditional.HasPSKTLSv13},
		{conditional.FlagCustomExt, conditional.HasCustomExt},
		{conditional.FlagOpenSSLCleanup, conditional.HasOpenSSLCleanup},
		{conditional.FlagTLSv13, conditional.HasTLSv13},
		{conditional.FlagTLSv13Functions, conditional.HasTLSv13Functions},
		{conditional.FlagRawKey, conditional.HasRawKey},
		{conditional.FlagEVPDigestFinalXOF, conditional.HasEVPDigestFinalXOF},
		{conditional.FlagEngine, conditional.HasEngine},
		{conditional.FlagVerifiedChain, conditional.HasVerifiedChain},
		{conditional.FlagSRTP, conditional.HasSRTP},
		{conditional.FlagGetProtoVersion, conditional.HasGetProtoVersion},
		{conditional.FlagProviders, conditional.HasProviders},
		{conditional.FlagOpNoRenegotiation, conditional.HasOpNoRenegotiation},
		{conditional.FlagDTLSGetDataMTU, conditional.HasDTLSGetDataMTU},
		{conditional.Flag300FIPS, conditional.Has300FIPS},
		{conditional.FlagSSLCookie, conditional.HasSSLCookie},
		{conditional.FlagPKCS7Funcs, conditional.HasPKCS7Funcs},
		{conditional.FlagBNFlags, conditional.HasBNFlags},
		{conditional.FlagEVPPKEYDH, conditional.HasEVPPKEYDH},
		{conditional.Flag300EVPCipher, conditional.Has300EVPCipher},
		{conditional.FlagUnexpectedEOFWhileReading, conditional.HasUnexpectedEOFWhileReading},
		{conditional.FlagPKCS12SetMac, conditional.HasPKCS12SetMac},
		{conditional.FlagSSLOpIgnoreUnexpectedEOF, conditional.HasSSLOpIgnoreUnexpectedEOF},
		{conditional.FlagGetExtmsSupport, conditional.HasGetExtmsSupport},
		{conditional.FlagEVPPKEYSetPeerEx, conditional.HasEVPPKEYSetPeerEx},
		{conditional.FlagEVPAEAD, conditional.HasEVPAEAD},
	}
	require.Len(t, tests, conditional.Len(), "every flag needs an accessor")
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, conditional.MustSymbols(tt.flag), tt.fn())
		})
	}
}

func TestConcurrentReads(t *testing.T) {
	want := conditional.BuildConditionalMap()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !assert.Equal(t, want, conditional.BuildConditionalMap()) {
					return
				}
				_ = conditional.HasTLSv13Functions()
			}
		}()
	}
	wg.Wait()
}
