package models

import "github.com/go-playground/validator/v10"

// Shared validator instance for all model types.
var validate = validator.New()
