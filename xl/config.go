package xl

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Configuration errors. Any of them aborts encoding before XML is built.
var (
	ErrMissingFilename  = errors.New("config is missing property filename")
	ErrFilenameType     = errors.New("filename can only be of type string")
	ErrInvalidFilename  = errors.New("filename can not contain path separators")
	ErrSheetNotSequence = errors.New("sheet data is not a sequence")
	ErrRowNotSequence   = errors.New("sheet data row is not a sequence")
	ErrInvalidCell      = errors.New("sheet data cell is not a mapping")
	ErrInvalidNumber    = errors.New("number cell does not hold a finite decimal number")
	ErrInvalidText      = errors.New("string cell holds text that XML can not carry")
)

// Config is the input of one encoding run.
type Config struct {
	// Filename names the delivered artifact, without the .xlsx extension.
	Filename string `validate:"required,excludesall=/\\"`
	Sheet    Sheet
}

var validate = validator.New()

var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Validate checks the configuration eagerly and reports the first problem.
func (c *Config) Validate() error {
	if c == nil {
		return ErrMissingFilename
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.Tag() {
				case "required":
					return ErrMissingFilename
				case "excludesall":
					return fmt.Errorf("%w: %q", ErrInvalidFilename, c.Filename)
				}
			}
		}
		return err
	}

	for i, row := range c.Sheet.Data {
		for j, cell := range row {
			switch {
			case cell.Type == CellTypeNumber:
				if !isDecimal(cell.Value) {
					return fmt.Errorf("%w: %s holds %q", ErrInvalidNumber, CellReference(j, i+1), cell.Value)
				}
			case !isXMLText(cell.Value):
				// unknown types render as strings too
				return fmt.Errorf("%w: %s holds %q", ErrInvalidText, CellReference(j, i+1), cell.Value)
			}
		}
	}
	return nil
}

// isDecimal reports whether v is a plain decimal number that fits a float64.
func isDecimal(v string) bool {
	if !decimalNumber.MatchString(v) {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// isXMLText reports whether v is valid UTF-8 made only of characters allowed
// by the XML 1.0 Char production.
func isXMLText(v string) bool {
	if !utf8.ValidString(v) {
		return false
	}
	for _, r := range v {
		switch {
		case r == 0x9 || r == 0xA || r == 0xD:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}
