package index

// ControlField represents a standard field in a Debian control stanza or
// binary package index entry.
type ControlField string

const (
	FieldPackage        ControlField = "Package"
	FieldSource         ControlField = "Source"
	FieldVersion        ControlField = "Version"
	FieldSection        ControlField = "Section"
	FieldPriority       ControlField = "Priority"
	FieldArchitecture   ControlField = "Architecture"
	FieldEssential      ControlField = "Essential"
	FieldDepends        ControlField = "Depends"
	FieldPreDepends     ControlField = "Pre-Depends"
	FieldRecommends     ControlField = "Recommends"
	FieldSuggests       ControlField = "Suggests"
	FieldReplaces       ControlField = "Replaces"
	FieldEnhances       ControlField = "Enhances"
	FieldBreaks         ControlField = "Breaks"
	FieldConflicts      ControlField = "Conflicts"
	FieldInstalledSize  ControlField = "Installed-Size"
	FieldMaintainer     ControlField = "Maintainer"
	FieldDescription    ControlField = "Description"
	FieldHomepage       ControlField = "Homepage"
	FieldBuiltUsing     ControlField = "Built-Using"
	FieldPackageType    ControlField = "Package-Type"
	FieldTag            ControlField = "Tag"
	FieldFilename       ControlField = "Filename"
	FieldSize           ControlField = "Size"
	FieldMD5Sum         ControlField = "MD5Sum"
	FieldSHA1           ControlField = "SHA1"
	FieldSHA256         ControlField = "SHA256"
	FieldSHA512         ControlField = "SHA512"
	FieldDescriptionMD5 ControlField = "Description-md5"
)

// ReleaseField represents a standard field in a Debian Release file.
type ReleaseField string

const (
	RelArchitectures        ReleaseField = "Architectures"
	RelComponents           ReleaseField = "Components"
	RelDescription          ReleaseField = "Description"
	RelOrigin               ReleaseField = "Origin"
	RelLabel                ReleaseField = "Label"
	RelSuite                ReleaseField = "Suite"
	RelVersion              ReleaseField = "Version"
	RelCodename             ReleaseField = "Codename"
	RelDate                 ReleaseField = "Date"
	RelValidUntil           ReleaseField = "Valid-Until"
	RelMD5Sum               ReleaseField = "MD5Sum"
	RelSHA1                 ReleaseField = "SHA1"
	RelSHA256               ReleaseField = "SHA256"
	RelSHA512               ReleaseField = "SHA512"
	RelNotAutomatic         ReleaseField = "NotAutomatic"
	RelButAutomaticUpgrades ReleaseField = "ButAutomaticUpgrades"
	RelAcquireByHash        ReleaseField = "Acquire-By-Hash"
	RelSignedBy             ReleaseField = "Signed-By"
	RelPackagesRequireAuth  ReleaseField = "Packages-Require-Authorization"
	RelNoSupportForArchAll  ReleaseField = "No-Support-for-Architecture-all"
)
