package conditional

// One accessor per flag. Each returns a fresh copy of the symbol list.

// IsLibreSSL returns the symbols only defined when building against LibreSSL.
func IsLibreSSL() []string { return MustSymbols(FlagIsLibreSSL) }

// HasEC2M returns the binary-field elliptic curve symbols.
func HasEC2M() []string { return MustSymbols(FlagEC2M) }

// HasSSL3Method returns the SSLv3 method constructors.
func HasSSL3Method() []string { return MustSymbols(FlagSSL3Method) }

// Has110VerificationParams returns the hostname check flags added in OpenSSL 1.1.0.
func Has110VerificationParams() []string { return MustSymbols(Flag110VerificationParams) }

// HasSetCertCB returns the certificate callback setters.
func HasSetCertCB() []string { return MustSymbols(FlagSetCertCB) }

// HasSSLST returns the legacy SSL_ST_* handshake state constants.
func HasSSLST() []string { return MustSymbols(FlagSSLST) }

// HasTLSST returns the TLS_ST_* handshake state constants.
func HasTLSST() []string { return MustSymbols(FlagTLSST) }

// HasScrypt returns the scrypt KDF entry point.
func HasScrypt() []string { return MustSymbols(FlagScrypt) }

func HasEVPPKEYDHX() []string { return MustSymbols(FlagEVPPKEYDHX) }

func HasMemFunctions() []string { return MustSymbols(FlagMemFunctions) }

func HasX509StoreCtxGetIssuer() []string { return MustSymbols(FlagX509StoreCtxGetIssuer) }

// HasED448 returns the Ed448 key type identifiers.
func HasED448() []string { return MustSymbols(FlagED448) }

// HasED25519 returns the Ed25519 key type identifiers.
func HasED25519() []string { return MustSymbols(FlagED25519) }

func HasPoly1305() []string { return MustSymbols(FlagPoly1305) }

// HasOneshotEVPDigestSignVerify returns the one-shot EVP sign and verify functions.
func HasOneshotEVPDigestSignVerify() []string { return MustSymbols(FlagOneshotEVPDigestSignVerify) }

func HasEVPPKEYGetSetTLSEncodedPoint() []string { return MustSymbols(FlagEVPPKEYGetSetTLSEncodedPoint) }

// HasFIPS returns the OpenSSL 1.x FIPS mode entry points.
func HasFIPS() []string { return MustSymbols(FlagFIPS) }

// HasPSK returns the pre-shared key client and server callback setters.
func HasPSK() []string { return MustSymbols(FlagPSK) }

// HasPSKTLSv13 returns the TLS 1.3 external PSK session functions.
func HasPSKTLSv13() []string { return MustSymbols(FlagPSKTLSv13) }

func HasCustomExt() []string { return MustSymbols(FlagCustomExt) }

func HasOpenSSLCleanup() []string { return MustSymbols(FlagOpenSSLCleanup) }

// HasTLSv13 returns the TLS 1.3 protocol constants.
func HasTLSv13() []string { return MustSymbols(FlagTLSv13) }

// HasTLSv13Functions returns the TLS 1.3 ciphersuite, post-handshake auth and early data functions.
func HasTLSv13Functions() []string { return MustSymbols(FlagTLSv13Functions) }

// HasRawKey returns the raw public/private key import and export functions.
func HasRawKey() []string { return MustSymbols(FlagRawKey) }

func HasEVPDigestFinalXOF() []string { return MustSymbols(FlagEVPDigestFinalXOF) }

// HasEngine returns the ENGINE API.
func HasEngine() []string { return MustSymbols(FlagEngine) }

func HasVerifiedChain() []string { return MustSymbols(FlagVerifiedChain) }

func HasSRTP() []string { return MustSymbols(FlagSRTP) }

func HasGetProtoVersion() []string { return MustSymbols(FlagGetProtoVersion) }

// HasProviders returns the OpenSSL 3 provider API.
func HasProviders() []string { return MustSymbols(FlagProviders) }

func HasOpNoRenegotiation() []string { return MustSymbols(FlagOpNoRenegotiation) }

func HasDTLSGetDataMTU() []string { return MustSymbols(FlagDTLSGetDataMTU) }

// Has300FIPS returns the OpenSSL 3 default-properties FIPS switches.
func Has300FIPS() []string { return MustSymbols(Flag300FIPS) }

func HasSSLCookie() []string { return MustSymbols(FlagSSLCookie) }

func HasPKCS7Funcs() []string { return MustSymbols(FlagPKCS7Funcs) }

func HasBNFlags() []string { return MustSymbols(FlagBNFlags) }

func HasEVPPKEYDH() []string { return MustSymbols(FlagEVPPKEYDH) }

func Has300EVPCipher() []string { return MustSymbols(Flag300EVPCipher) }

func HasUnexpectedEOFWhileReading() []string { return MustSymbols(FlagUnexpectedEOFWhileReading) }

func HasPKCS12SetMac() []string { return MustSymbols(FlagPKCS12SetMac) }

func HasSSLOpIgnoreUnexpectedEOF() []string { return MustSymbols(FlagSSLOpIgnoreUnexpectedEOF) }

func HasGetExtmsSupport() []string { return MustSymbols(FlagGetExtmsSupport) }

func HasEVPPKEYSetPeerEx() []string { return MustSymbols(FlagEVPPKEYSetPeerEx) }

// HasEVPAEAD returns the BoringSSL EVP_AEAD interface.
func HasEVPAEAD() []string { return MustSymbols(FlagEVPAEAD) }
