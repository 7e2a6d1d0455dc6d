package recipe

// Value objects owned exclusively by their parent Recipe or draft.

// Ingredient represents an ingredient line in a recipe
type Ingredient struct {
	Item            string
	Amount          float64
	Unit            string
	PrepTimeSeconds int
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if i.Item == "" {
		return ErrIngredientNameRequired
	}
	if i.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Instruction represents a cooking instruction step.
// Steps are numbered contiguously starting at 1.
type Instruction struct {
	Step         int
	Text         string
	TimerSeconds int
}

// Validate validates the instruction
func (i Instruction) Validate() error {
	if i.Text == "" {
		return ErrInstructionTextRequired
	}
	if i.Step < 1 {
		return ErrStepsNotContiguous
	}
	return nil
}

// Nutrition contains aggregate macro totals for a recipe.
// Derived data: recomputed whenever the owning ingredient list changes.
type Nutrition struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

// IsZero reports whether no macro has been recorded
func (n Nutrition) IsZero() bool {
	return n.Calories == 0 && n.Protein == 0 && n.Carbs == 0 && n.Fat == 0
}
