package openssl

var (
	ParseVersionNumber = parseVersionNumber
	FlavorOf           = flavorOf
)
