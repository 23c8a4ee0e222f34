package domain

import "fmt"

// Column names of the feature row the trained classifier expects. These are
// a contract with the model artifact: renaming or dropping one is a breaking
// change that requires a compatibly retrained model.
const (
	ColAmount        = "Transaction Amount"
	ColLogAmount     = "Log_TransactionAmount"
	ColQuantity      = "Quantity"
	ColCustomerAge   = "Customer Age"
	ColAccountAge    = "Account Age Days"
	ColIsNewAccount  = "Is_New_Account"
	ColHour          = "Transaction Hour"
	ColDayOfWeek     = "Trans_DayOfWeek"
	ColIsWeekend     = "Trans_IsWeekend"
	ColPaymentMethod = "Payment Method"
	ColCategory      = "Product Category"
	ColDevice        = "Device Used"
	ColLocationShort = "Customer_Location_Short"
	ColAgeBucket     = "Customer_Age_Bucket"
	ColPartOfDay     = "Trans_PartOfDay"
)

// RequiredColumns lists every column a FeatureRecord must carry, in the
// order the model artifact was trained with.
var RequiredColumns = []string{
	ColAmount,
	ColLogAmount,
	ColQuantity,
	ColCustomerAge,
	ColAccountAge,
	ColIsNewAccount,
	ColHour,
	ColDayOfWeek,
	ColIsWeekend,
	ColPaymentMethod,
	ColCategory,
	ColDevice,
	ColLocationShort,
	ColAgeBucket,
	ColPartOfDay,
}

// FeatureRecord is the fully-keyed single-row input to the classifier.
// Numeric columns hold float64 or int, flag columns hold int 0/1 (the
// encoding the model was trained with), categorical columns hold string.
// Immutable by convention once assembled.
type FeatureRecord map[string]any

// Float returns a numeric column as float64. Flag and integer columns are
// widened; non-numeric columns return 0.
func (r FeatureRecord) Float(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// String returns a categorical column, or "" when absent.
func (r FeatureRecord) String(col string) string {
	s, _ := r[col].(string)
	return s
}

// SchemaError reports a feature record missing a required column. It
// indicates a deriver or assembler bug, not bad user input, and is fatal
// to the request it occurs in.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("feature record missing required column %q", e.Column)
}
