package recipe

import "errors"

// Domain errors for catalog and draft operations

var (
	ErrTitleTooShort           = errors.New("recipe title must be at least 3 characters")
	ErrInvalidServings         = errors.New("servings must be greater than 0")
	ErrNegativeTime            = errors.New("prep and cook time must not be negative")
	ErrNoIngredients           = errors.New("recipe must have at least one ingredient")
	ErrNoInstructions          = errors.New("recipe must have at least one instruction")
	ErrStepsNotContiguous      = errors.New("instruction steps must be numbered contiguously from 1")
	ErrIngredientNameRequired  = errors.New("ingredient name is required")
	ErrNegativeAmount          = errors.New("ingredient amount cannot be negative")
	ErrInstructionTextRequired = errors.New("instruction text is required")

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrStepOutOfRange = errors.New("instruction step out of range")
)
