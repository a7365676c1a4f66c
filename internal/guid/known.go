package guid

// Top-level and header object identifiers.
var (
	HeaderObject                     = MustParse("75B22630-668E-11CF-A6D9-00AA0062CE6C")
	DataObject                       = MustParse("75B22636-668E-11CF-A6D9-00AA0062CE6C")
	SimpleIndexObject                = MustParse("33000890-E5B1-11CF-89F4-00A0C90349CB")
	IndexObject                      = MustParse("D6E229D3-35DA-11D1-9034-00A0C90349BE")
	FilePropertiesObject             = MustParse("8CABDCA1-A947-11CF-8EE4-00C00C205365")
	StreamPropertiesObject           = MustParse("B7DC0791-A9B7-11CF-8EE6-00C00C205365")
	HeaderExtensionObject            = MustParse("5FBF03B5-A92E-11CF-8EE3-00C00C205365")
	CodecListObject                  = MustParse("86D15240-311D-11D0-A3A4-00A0C90348F6")
	ContentDescriptionObject         = MustParse("75B22633-668E-11CF-A6D9-00AA0062CE6C")
	ExtendedContentDescriptionObject = MustParse("D2D0A440-E307-11D2-97F0-00A0C95EA850")
	StreamBitratePropertiesObject    = MustParse("7BF875CE-468D-11D1-8D82-006097C9A2B2")
	PaddingObject                    = MustParse("1806D474-CADF-4509-A4BA-9AABCB96AAE8")
	ErrorCorrectionObject            = MustParse("75B22635-668E-11CF-A6D9-00AA0062CE6C")
)

// Error correction scheme identifiers carried inside the Error Correction Object.
var (
	NoErrorCorrection = MustParse("20FB5700-5B55-11CF-A8FD-00805F5C442B")
	AudioSpread       = MustParse("BFC3CD50-618F-11CF-8BB2-00AA00B4E220")
)
