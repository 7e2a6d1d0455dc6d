package recipe

import "github.com/google/uuid"

// Draft is the transient authoring state behind the builder form.
// It is never persisted back into the catalog; its ingredient and
// instruction lists are the only mutable recipe state in the system.
type Draft struct {
	ID           uuid.UUID
	Title        string
	Category     string
	Ingredients  []Ingredient
	Instructions []Instruction
}

// NewDraft creates an empty draft with one blank ingredient row and
// one blank instruction step, mirroring the initial form state.
func NewDraft() *Draft {
	return &Draft{
		ID:           uuid.New(),
		Ingredients:  []Ingredient{{Unit: "g"}},
		Instructions: []Instruction{{Step: 1}},
	}
}

// AddIngredient appends a blank ingredient row
func (d *Draft) AddIngredient() {
	d.Ingredients = append(d.Ingredients, Ingredient{Unit: "g"})
}

// RemoveIngredient removes the ingredient at index i. Out-of-range
// indexes are ignored.
func (d *Draft) RemoveIngredient(i int) {
	if i < 0 || i >= len(d.Ingredients) {
		return
	}
	d.Ingredients = append(d.Ingredients[:i], d.Ingredients[i+1:]...)
}

// SetIngredient replaces the ingredient at index i
func (d *Draft) SetIngredient(i int, ing Ingredient) error {
	if i < 0 || i >= len(d.Ingredients) {
		return ErrStepOutOfRange
	}
	d.Ingredients[i] = ing
	return nil
}

// AddInstruction appends a blank step numbered after the current last
func (d *Draft) AddInstruction() {
	d.Instructions = append(d.Instructions, Instruction{Step: len(d.Instructions) + 1})
}

// RemoveInstruction removes the step at index i and renumbers the
// remaining steps contiguously from 1. Out-of-range indexes are
// ignored.
func (d *Draft) RemoveInstruction(i int) {
	if i < 0 || i >= len(d.Instructions) {
		return
	}
	d.Instructions = append(d.Instructions[:i], d.Instructions[i+1:]...)
	for j := range d.Instructions {
		d.Instructions[j].Step = j + 1
	}
}

// SetInstructionText updates the text of the step at index i
func (d *Draft) SetInstructionText(i int, text string) error {
	if i < 0 || i >= len(d.Instructions) {
		return ErrStepOutOfRange
	}
	d.Instructions[i].Text = text
	return nil
}

// TotalPrepSeconds sums the per-ingredient preparation time
func (d *Draft) TotalPrepSeconds() int {
	total := 0
	for _, ing := range d.Ingredients {
		if ing.PrepTimeSeconds > 0 {
			total += ing.PrepTimeSeconds
		}
	}
	return total
}
