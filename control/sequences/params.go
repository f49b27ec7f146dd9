package sequences

// Selective parameter values. Each type is accepted by one builder; the zero
// value of every type is the ECMA-48 default.

// ErasePage selects what ED erases.
type ErasePage uint32

const (
	ErasePageActivePositionToEnd   ErasePage = 0
	ErasePageBeginToActivePosition ErasePage = 1
	ErasePageBeginToEnd            ErasePage = 2
)

// EraseLine selects what EL erases.
type EraseLine uint32

const (
	EraseLineActivePositionToEnd   EraseLine = 0
	EraseLineBeginToActivePosition EraseLine = 1
	EraseLineBeginToEnd            EraseLine = 2
)

// EraseArea selects what EA erases.
type EraseArea uint32

const (
	EraseAreaActivePositionToEnd   EraseArea = 0
	EraseAreaBeginToActivePosition EraseArea = 1
	EraseAreaBeginToEnd            EraseArea = 2
)

// EraseField selects what EF erases.
type EraseField uint32

const (
	EraseFieldActivePositionToEnd   EraseField = 0
	EraseFieldBeginToActivePosition EraseField = 1
	EraseFieldBeginToEnd            EraseField = 2
)

// TabulationControl is the parameter of CTC.
type TabulationControl uint32

const (
	SetCharacterTabulationStop TabulationControl = iota
	SetLineTabulationStop
	ClearCharacterTabulationStop
	ClearLineTabulationStop
	ClearCharacterTabulationStopsInLine
	ClearAllCharacterTabulationStops
	ClearAllLineTabulationStops
)

// ClearTabulation is the parameter of TBC.
type ClearTabulation uint32

const (
	CharacterTabulationStopActivePosition ClearTabulation = iota
	LineTabulationStopActiveLine
	AllCharacterTabulationStopsActiveLine
	AllCharacterTabulationStops
	AllLineTabulationStops
	AllTabulationStops
)

// DeviceStatusReport is the parameter of DSR.
type DeviceStatusReport uint32

const (
	StatusReady DeviceStatusReport = iota
	StatusBusyRepeat
	StatusBusyLater
	StatusMalfunctionRepeat
	StatusMalfunctionLater
	RequestDeviceStatusReport
	RequestActivePositionReport
)

// ReversedString is the parameter of SRS.
type ReversedString uint32

const (
	ReversedStringEnd   ReversedString = 0
	ReversedStringStart ReversedString = 1
)

// PrintQuality is the parameter of SPQR.
type PrintQuality uint32

const (
	HighQualityLowSpeed PrintQuality = iota
	MediumQualityMediumSpeed
	LowQualityHighSpeed
)

// GraphicRendition is one aspect set by SGR.
type GraphicRendition uint32

const (
	RenditionDefault           GraphicRendition = 0
	RenditionBold              GraphicRendition = 1
	RenditionFaint             GraphicRendition = 2
	RenditionItalic            GraphicRendition = 3
	RenditionUnderline         GraphicRendition = 4
	RenditionSlowBlink         GraphicRendition = 5
	RenditionRapidBlink        GraphicRendition = 6
	RenditionNegative          GraphicRendition = 7
	RenditionConcealed         GraphicRendition = 8
	RenditionCrossedOut        GraphicRendition = 9
	RenditionPrimaryFont       GraphicRendition = 10
	RenditionFraktur           GraphicRendition = 20
	RenditionDoubleUnderline   GraphicRendition = 21
	RenditionNormalIntensity   GraphicRendition = 22
	RenditionNotItalic         GraphicRendition = 23
	RenditionNotUnderlined     GraphicRendition = 24
	RenditionSteady            GraphicRendition = 25
	RenditionPositive          GraphicRendition = 27
	RenditionRevealed          GraphicRendition = 28
	RenditionNotCrossedOut     GraphicRendition = 29
	RenditionForegroundBlack   GraphicRendition = 30
	RenditionForegroundRed     GraphicRendition = 31
	RenditionForegroundGreen   GraphicRendition = 32
	RenditionForegroundYellow  GraphicRendition = 33
	RenditionForegroundBlue    GraphicRendition = 34
	RenditionForegroundMagenta GraphicRendition = 35
	RenditionForegroundCyan    GraphicRendition = 36
	RenditionForegroundWhite   GraphicRendition = 37
	RenditionForegroundColor   GraphicRendition = 38
	RenditionForegroundDefault GraphicRendition = 39
	RenditionBackgroundBlack   GraphicRendition = 40
	RenditionBackgroundRed     GraphicRendition = 41
	RenditionBackgroundGreen   GraphicRendition = 42
	RenditionBackgroundYellow  GraphicRendition = 43
	RenditionBackgroundBlue    GraphicRendition = 44
	RenditionBackgroundMagenta GraphicRendition = 45
	RenditionBackgroundCyan    GraphicRendition = 46
	RenditionBackgroundWhite   GraphicRendition = 47
	RenditionBackgroundColor   GraphicRendition = 48
	RenditionBackgroundDefault GraphicRendition = 49
	RenditionFramed            GraphicRendition = 51
	RenditionEncircled         GraphicRendition = 52
	RenditionOverlined         GraphicRendition = 53
	RenditionNotFramed         GraphicRendition = 54
	RenditionNotOverlined      GraphicRendition = 55
	RenditionUnderlineColor    GraphicRendition = 58
	RenditionUnderlineDefault  GraphicRendition = 59
)
