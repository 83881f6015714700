package conditional

// Flag names, as defined by the binding layer.
const (
	FlagIsLibreSSL                   = "CRYPTOGRAPHY_IS_LIBRESSL"
	FlagEC2M                         = "Cryptography_HAS_EC2M"
	FlagSSL3Method                   = "Cryptography_HAS_SSL3_METHOD"
	Flag110VerificationParams        = "Cryptography_HAS_110_VERIFICATION_PARAMS"
	FlagSetCertCB                    = "Cryptography_HAS_SET_CERT_CB"
	FlagSSLST                        = "Cryptography_HAS_SSL_ST"
	FlagTLSST                        = "Cryptography_HAS_TLS_ST"
	FlagScrypt                       = "Cryptography_HAS_SCRYPT"
	FlagEVPPKEYDHX                   = "Cryptography_HAS_EVP_PKEY_DHX"
	FlagMemFunctions                 = "Cryptography_HAS_MEM_FUNCTIONS"
	FlagX509StoreCtxGetIssuer        = "Cryptography_HAS_X509_STORE_CTX_GET_ISSUER"
	FlagED448                        = "Cryptography_HAS_ED448"
	FlagED25519                      = "Cryptography_HAS_ED25519"
	FlagPoly1305                     = "Cryptography_HAS_POLY1305"
	FlagOneshotEVPDigestSignVerify   = "Cryptography_HAS_ONESHOT_EVP_DIGEST_SIGN_VERIFY"
	FlagEVPPKEYGetSetTLSEncodedPoint = "Cryptography_HAS_EVP_PKEY_get_set_tls_encodedpoint"
	FlagFIPS                         = "Cryptography_HAS_FIPS"
	FlagPSK                          = "Cryptography_HAS_PSK"
	FlagPSKTLSv13                    = "Cryptography_HAS_PSK_TLSv1_3"
	FlagCustomExt                    = "Cryptography_HAS_CUSTOM_EXT"
	FlagOpenSSLCleanup               = "Cryptography_HAS_OPENSSL_CLEANUP"
	FlagTLSv13                       = "Cryptography_HAS_TLSv1_3"
	FlagTLSv13Functions              = "Cryptography_HAS_TLSv1_3_FUNCTIONS"
	FlagRawKey                       = "Cryptography_HAS_RAW_KEY"
	FlagEVPDigestFinalXOF            = "Cryptography_HAS_EVP_DIGESTFINAL_XOF"
	FlagEngine                       = "Cryptography_HAS_ENGINE"
	FlagVerifiedChain                = "Cryptography_HAS_VERIFIED_CHAIN"
	FlagSRTP                         = "Cryptography_HAS_SRTP"
	FlagGetProtoVersion              = "Cryptography_HAS_GET_PROTO_VERSION"
	FlagProviders                    = "Cryptography_HAS_PROVIDERS"
	FlagOpNoRenegotiation            = "Cryptography_HAS_OP_NO_RENEGOTIATION"
	FlagDTLSGetDataMTU               = "Cryptography_HAS_DTLS_GET_DATA_MTU"
	Flag300FIPS                      = "Cryptography_HAS_300_FIPS"
	FlagSSLCookie                    = "Cryptography_HAS_SSL_COOKIE"
	FlagPKCS7Funcs                   = "Cryptography_HAS_PKCS7_FUNCS"
	FlagBNFlags                      = "Cryptography_HAS_BN_FLAGS"
	FlagEVPPKEYDH                    = "Cryptography_HAS_EVP_PKEY_DH"
	Flag300EVPCipher                 = "Cryptography_HAS_300_EVP_CIPHER"
	FlagUnexpectedEOFWhileReading    = "Cryptography_HAS_UNEXPECTED_EOF_WHILE_READING"
	FlagPKCS12SetMac                 = "Cryptography_HAS_PKCS12_SET_MAC"
	FlagSSLOpIgnoreUnexpectedEOF     = "Cryptography_HAS_SSL_OP_IGNORE_UNEXPECTED_EOF"
	FlagGetExtmsSupport              = "Cryptography_HAS_GET_EXTMS_SUPPORT"
	FlagEVPPKEYSetPeerEx             = "Cryptography_HAS_EVP_PKEY_SET_PEER_EX"
	FlagEVPAEAD                      = "Cryptography_HAS_EVP_AEAD"
)

var (
	v102 = Version{1, 0, 2}
	v110 = Version{1, 1, 0}
	v111 = Version{1, 1, 1}
	v300 = Version{3, 0, 0}
	v320 = Version{3, 2, 0}
)

// table is the ordered registry of conditional names. It is validated
// once by init and never modified afterwards.
var table = Table{
	{
		Name:     FlagIsLibreSSL,
		Symbols:  []string{"LIBRESSL_VERSION_NUMBER", "LIBRESSL_VERSION_TEXT"},
		Requires: Requirement{Flavor: LibreSSL},
	},
	{
		Name:     FlagEC2M,
		Symbols:  []string{"EC_POINT_get_affine_coordinates_GF2m"},
		Requires: Requirement{Probe: []string{"EC_POINT_get_affine_coordinates_GF2m"}},
	},
	{
		Name:     FlagSSL3Method,
		Symbols:  []string{"SSLv3_method", "SSLv3_client_method", "SSLv3_server_method"},
		Requires: Requirement{Probe: []string{"SSLv3_method"}},
	},
	{
		Name:     Flag110VerificationParams,
		Symbols:  []string{"X509_CHECK_FLAG_NEVER_CHECK_SUBJECT"},
		Requires: Requirement{Since: v110},
	},
	{
		Name:     FlagSetCertCB,
		Symbols:  []string{"SSL_CTX_set_cert_cb", "SSL_set_cert_cb"},
		Requires: Requirement{Since: v102, Probe: []string{"SSL_CTX_set_cert_cb"}},
	},
	{
		Name:     FlagSSLST,
		Symbols:  []string{"SSL_ST_BEFORE", "SSL_ST_OK", "SSL_ST_INIT", "SSL_ST_RENEGOTIATE"},
		Requires: Requirement{Until: v110},
	},
	{
		Name:     FlagTLSST,
		Symbols:  []string{"TLS_ST_BEFORE", "TLS_ST_OK"},
		Requires: Requirement{Since: v110},
	},
	{
		Name:     FlagScrypt,
		Symbols:  []string{"EVP_PBE_scrypt"},
		Requires: Requirement{Since: v110, Probe: []string{"EVP_PBE_scrypt"}},
	},
	{
		Name:     FlagEVPPKEYDHX,
		Symbols:  []string{"EVP_PKEY_DHX"},
		Requires: Requirement{Since: v102},
	},
	{
		Name:     FlagMemFunctions,
		Symbols:  []string{"Cryptography_CRYPTO_set_mem_functions"},
		Requires: Requirement{Since: v110, Probe: []string{"CRYPTO_set_mem_functions"}},
	},
	{
		Name:     FlagX509StoreCtxGetIssuer,
		Symbols:  []string{"X509_STORE_get_get_issuer", "X509_STORE_set_get_issuer"},
		Requires: Requirement{Since: v110, Probe: []string{"X509_STORE_set_get_issuer"}},
	},
	{
		Name:     FlagED448,
		Symbols:  []string{"EVP_PKEY_ED448", "NID_ED448"},
		Requires: Requirement{Since: v111},
	},
	{
		Name:     FlagED25519,
		Symbols:  []string{"NID_ED25519", "EVP_PKEY_ED25519"},
		Requires: Requirement{Since: v111},
	},
	{
		Name:     FlagPoly1305,
		Symbols:  []string{"NID_poly1305", "EVP_PKEY_POLY1305"},
		Requires: Requirement{Since: v111},
	},
	{
		Name:     FlagOneshotEVPDigestSignVerify,
		Symbols:  []string{"EVP_DigestSign", "EVP_DigestVerify"},
		Requires: Requirement{Since: v111, Probe: []string{"EVP_DigestSign", "EVP_DigestVerify"}},
	},
	{
		Name:     FlagEVPPKEYGetSetTLSEncodedPoint,
		Symbols:  []string{"EVP_PKEY_get1_tls_encodedpoint", "EVP_PKEY_set1_tls_encodedpoint"},
		Requires: Requirement{Since: v110, Until: v300, Probe: []string{"EVP_PKEY_get1_tls_encodedpoint"}},
	},
	{
		Name:     FlagFIPS,
		Symbols:  []string{"FIPS_mode_set", "FIPS_mode"},
		Requires: Requirement{Until: v300, Probe: []string{"FIPS_mode_set", "FIPS_mode"}},
	},
	{
		Name: FlagPSK,
		Symbols: []string{
			"SSL_CTX_use_psk_identity_hint",
			"SSL_CTX_set_psk_server_callback",
			"SSL_CTX_set_psk_client_callback",
		},
		Requires: Requirement{Probe: []string{"SSL_CTX_set_psk_server_callback"}},
	},
	{
		Name: FlagPSKTLSv13,
		Symbols: []string{
			"SSL_CTX_set_psk_find_session_callback",
			"SSL_CTX_set_psk_use_session_callback",
			"Cryptography_SSL_SESSION_new",
			"SSL_CIPHER_find",
			"SSL_SESSION_set1_master_key",
			"SSL_SESSION_set_cipher",
			"SSL_SESSION_set_protocol_version",
		},
		Requires: Requirement{Since: v111, Probe: []string{"SSL_CTX_set_psk_find_session_callback"}},
	},
	{
		Name: FlagCustomExt,
		Symbols: []string{
			"SSL_CTX_add_client_custom_ext",
			"SSL_CTX_add_server_custom_ext",
			"SSL_extension_supported",
		},
		Requires: Requirement{Since: v102, Probe: []string{"SSL_CTX_add_client_custom_ext", "SSL_extension_supported"}},
	},
	{
		Name:     FlagOpenSSLCleanup,
		Symbols:  []string{"OPENSSL_cleanup"},
		Requires: Requirement{Since: v110, Probe: []string{"OPENSSL_cleanup"}},
	},
	{
		Name:     FlagTLSv13,
		Symbols:  []string{"TLS1_3_VERSION", "SSL_OP_NO_TLSv1_3"},
		Requires: Requirement{Since: v111},
	},
	{
		Name: FlagTLSv13Functions,
		Symbols: []string{
			"SSL_VERIFY_POST_HANDSHAKE",
			"SSL_CTX_set_ciphersuites",
			"SSL_verify_client_post_handshake",
			"SSL_CTX_set_post_handshake_auth",
			"SSL_set_post_handshake_auth",
			"SSL_SESSION_get_max_early_data",
			"SSL_write_early_data",
			"SSL_read_early_data",
			"SSL_CTX_set_max_early_data",
		},
		Requires: Requirement{Since: v111, Probe: []string{"SSL_CTX_set_ciphersuites"}},
	},
	{
		Name: FlagRawKey,
		Symbols: []string{
			"EVP_PKEY_new_raw_private_key",
			"EVP_PKEY_new_raw_public_key",
			"EVP_PKEY_get_raw_private_key",
			"EVP_PKEY_get_raw_public_key",
		},
		Requires: Requirement{Since: v111, Probe: []string{"EVP_PKEY_new_raw_private_key"}},
	},
	{
		Name:     FlagEVPDigestFinalXOF,
		Symbols:  []string{"EVP_DigestFinalXOF"},
		Requires: Requirement{Since: v111, Probe: []string{"EVP_DigestFinalXOF"}},
	},
	{
		Name: FlagEngine,
		Symbols: []string{
			"ENGINE_by_id",
			"ENGINE_init",
			"ENGINE_finish",
			"ENGINE_get_default_RAND",
			"ENGINE_set_default_RAND",
			"ENGINE_unregister_RAND",
			"ENGINE_ctrl_cmd",
			"ENGINE_free",
			"ENGINE_get_name",
			"Cryptography_add_osrandom_engine",
			"ENGINE_ctrl_cmd_string",
			"ENGINE_load_builtin_engines",
			"ENGINE_load_private_key",
			"ENGINE_load_public_key",
			"SSL_CTX_set_client_cert_engine",
		},
		Requires: Requirement{Probe: []string{"ENGINE_by_id"}},
	},
	{
		Name:     FlagVerifiedChain,
		Symbols:  []string{"SSL_get0_verified_chain"},
		Requires: Requirement{Since: v110, Probe: []string{"SSL_get0_verified_chain"}},
	},
	{
		Name: FlagSRTP,
		Symbols: []string{
			"SSL_CTX_set_tlsext_use_srtp",
			"SSL_set_tlsext_use_srtp",
			"SSL_get_selected_srtp_profile",
		},
		Requires: Requirement{Probe: []string{"SSL_CTX_set_tlsext_use_srtp"}},
	},
	{
		Name: FlagGetProtoVersion,
		Symbols: []string{
			"SSL_CTX_get_min_proto_version",
			"SSL_CTX_get_max_proto_version",
			"SSL_get_min_proto_version",
			"SSL_get_max_proto_version",
		},
		Requires: Requirement{Since: v111},
	},
	{
		Name: FlagProviders,
		Symbols: []string{
			"OSSL_PROVIDER_load",
			"OSSL_PROVIDER_unload",
			"ERR_LIB_PROV",
			"PROV_R_WRONG_FINAL_BLOCK_LENGTH",
			"PROV_R_BAD_DECRYPT",
		},
		Requires: Requirement{Since: v300, Probe: []string{"OSSL_PROVIDER_load"}},
	},
	{
		Name:     FlagOpNoRenegotiation,
		Symbols:  []string{"SSL_OP_NO_RENEGOTIATION"},
		Requires: Requirement{Since: v111},
	},
	{
		Name:     FlagDTLSGetDataMTU,
		Symbols:  []string{"DTLS_get_data_mtu"},
		Requires: Requirement{Since: v111, Probe: []string{"DTLS_get_data_mtu"}},
	},
	{
		Name:     Flag300FIPS,
		Symbols:  []string{"EVP_default_properties_is_fips_enabled", "EVP_default_properties_enable_fips"},
		Requires: Requirement{Since: v300, Probe: []string{"EVP_default_properties_is_fips_enabled"}},
	},
	{
		Name: FlagSSLCookie,
		Symbols: []string{
			"SSL_OP_COOKIE_EXCHANGE",
			"DTLSv1_listen",
			"SSL_CTX_set_cookie_generate_cb",
			"SSL_CTX_set_cookie_verify_cb",
		},
		Requires: Requirement{Probe: []string{"DTLSv1_listen"}},
	},
	{
		Name: FlagPKCS7Funcs,
		Symbols: []string{
			"SMIME_write_PKCS7",
			"PEM_write_bio_PKCS7_stream",
			"PKCS7_sign_add_signer",
			"PKCS7_final",
			"PKCS7_verify",
			"SMIME_read_PKCS7",
			"PKCS7_get0_signers",
		},
		Requires: Requirement{Probe: []string{"PKCS7_sign_add_signer"}},
	},
	{
		Name:     FlagBNFlags,
		Symbols:  []string{"BN_FLG_CONSTTIME", "BN_set_flags", "BN_prime_checks_for_size"},
		Requires: Requirement{Since: v110, Probe: []string{"BN_set_flags"}},
	},
	{
		Name:     FlagEVPPKEYDH,
		Symbols:  []string{"EVP_PKEY_set1_DH"},
		Requires: Requirement{Probe: []string{"EVP_PKEY_set1_DH"}},
	},
	{
		Name:     Flag300EVPCipher,
		Symbols:  []string{"EVP_CIPHER_fetch", "EVP_CIPHER_free"},
		Requires: Requirement{Since: v300, Probe: []string{"EVP_CIPHER_fetch"}},
	},
	{
		Name:     FlagUnexpectedEOFWhileReading,
		Symbols:  []string{"SSL_R_UNEXPECTED_EOF_WHILE_READING"},
		Requires: Requirement{Since: v300},
	},
	{
		Name:     FlagPKCS12SetMac,
		Symbols:  []string{"PKCS12_set_mac"},
		Requires: Requirement{Probe: []string{"PKCS12_set_mac"}},
	},
	{
		Name:     FlagSSLOpIgnoreUnexpectedEOF,
		Symbols:  []string{"SSL_OP_IGNORE_UNEXPECTED_EOF"},
		Requires: Requirement{Since: v300},
	},
	{
		Name:     FlagGetExtmsSupport,
		Symbols:  []string{"SSL_get_extms_support"},
		Requires: Requirement{Since: v320, Probe: []string{"SSL_get_extms_support"}},
	},
	{
		Name:     FlagEVPPKEYSetPeerEx,
		Symbols:  []string{"EVP_PKEY_derive_set_peer_ex"},
		Requires: Requirement{Since: v300, Probe: []string{"EVP_PKEY_derive_set_peer_ex"}},
	},
	{
		Name: FlagEVPAEAD,
		Symbols: []string{
			"EVP_aead_chacha20_poly1305",
			"EVP_AEAD_CTX_free",
			"EVP_AEAD_CTX_seal",
			"EVP_AEAD_CTX_open",
			"EVP_AEAD_max_overhead",
			"Cryptography_EVP_AEAD_CTX_new",
		},
		Requires: Requirement{Flavor: BoringSSL, Probe: []string{"EVP_aead_chacha20_poly1305"}},
	},
}
