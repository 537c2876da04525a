package entity

// Raw rows as they come out of the store. Nullable columns are pointers.

type WeightRow struct {
	Date        string
	WeightValue *float64
}

type WorkoutRow struct {
	Date        string
	Title       *string
	Description *string
}

type FoodRow struct {
	Date        string
	Calories    *float64
	Protein     *float64
	Carbs       *float64
	Fat         *float64
	Description *string
}

// Canonical records. Date is always a YYYY-MM-DD key.

type WeightSample struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type WorkoutRecord struct {
	Date        string `json:"date"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type FoodRecord struct {
	Date        string  `json:"date"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Description string  `json:"description,omitempty"`
}

// MacroTarget holds the daily reference values progress is measured against.
type MacroTarget struct {
	Calories float64 `json:"calories" yaml:"calories" validate:"gt=0"`
	Protein  float64 `json:"protein" yaml:"protein" validate:"gt=0"`
	Carbs    float64 `json:"carbs" yaml:"carbs" validate:"gt=0"`
	Fat      float64 `json:"fat" yaml:"fat" validate:"gt=0"`
}

func DefaultMacroTarget() MacroTarget {
	return MacroTarget{
		Calories: 2361,
		Protein:  225,
		Carbs:    201,
		Fat:      73,
	}
}

// Derived views

type TrendPoint struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type PresenceEntry struct {
	Date        string `json:"date"`
	Count       int    `json:"count"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type MacroProgress struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Target     float64 `json:"target"`
	Percent    float64 `json:"percent"`
	OverTarget bool    `json:"over_target"`
	Color      string  `json:"color"`
}
