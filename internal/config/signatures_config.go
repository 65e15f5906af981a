package config

// SoftwareSignature is one known software fingerprint: a regex matched
// case-insensitively against page text. When the pattern captures a
// group, that group is reported as the version.
type SoftwareSignature struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Pattern string `json:"pattern" yaml:"pattern" validate:"required"`
}

// SignaturesConfig carries the pattern data the matchers run against.
// Keeping these lists in configuration keeps the matcher logic generic:
// the code never hardcodes a product name or an admin path.
type SignaturesConfig struct {
	SoftwareSignatures []SoftwareSignature `json:"software_signatures,omitempty" yaml:"software_signatures,omitempty" validate:"omitempty,dive"`
	AdminPaths         []string            `json:"admin_paths,omitempty" yaml:"admin_paths,omitempty" validate:"omitempty,dive,required"`
	LoginMarkers       []string            `json:"login_markers,omitempty" yaml:"login_markers,omitempty" validate:"omitempty,dive,required"`
}

// NewDefaultSignaturesConfig returns the built-in pattern lists. They
// mirror the classic fingerprints: CMS powered-by footers, bare version
// strings, server banners leaking into page text.
func NewDefaultSignaturesConfig() SignaturesConfig {
	return SignaturesConfig{
		SoftwareSignatures: []SoftwareSignature{
			{Name: "CMS powered-by footer", Pattern: `powered by (?:wordpress|joomla|drupal|magento)\s*v?(\d+\.\d+(?:\.\d+)?(?:\.\d+)?)?`},
			{Name: "Version string", Pattern: `version\s+(\d+\.\d+(?:\.\d+)?(?:\.\d+)?)`},
			{Name: "Apache banner", Pattern: `apache/(\d+\.\d+(?:\.\d+)?)`},
			{Name: "Nginx banner", Pattern: `nginx/(\d+\.\d+(?:\.\d+)?)`},
			{Name: "PHP banner", Pattern: `php/(\d+\.\d+(?:\.\d+)?)`},
		},
		AdminPaths: []string{
			"/admin", "/administrator", "/login", "/wp-admin", "/dashboard",
			"/cpanel", "/phpmyadmin", "/webmail", "/user/login", "/panel",
		},
		LoginMarkers: []string{"login", "signin", "auth", "account"},
	}
}
