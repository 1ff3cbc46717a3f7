// Package plume provides validated console input for CLI tools.
//
// # Overview
//
// Every input function prompts on the console, validates what the user
// types, and re-prompts with the reason when validation fails. Retry
// limits, timeouts, default values, masking, and pre/post transforms
// are available on all of them through per-kind options structs.
//
// # Usage
//
//	import "github.com/simonhull/firebird-suite/plume"
//
//	name, err := plume.Str("Name: ", nil)
//
//	age, err := plume.Int("Age: ", &plume.IntOptions{
//	    Min:   plume.Bound(0),
//	    Limit: 3,
//	})
//
//	pet, err := plume.Choice("", []string{"dog", "cat"}, nil)
//
//	secret, err := plume.Password("Password: ", nil)
//
// When a Default is set, an exhausted retry limit or timeout yields the
// default instead of an error:
//
//	region := "us-east-1"
//	answer, _ := plume.Str("Region: ", &plume.StrOptions{
//	    Base:    plume.Base{Timeout: 10 * time.Second},
//	    Default: &region,
//	})
//
// # Building Blocks
//
// The prompt package holds the generic loop for custom value types,
// and the validate package holds the validation helpers the input
// functions are built from.
package plume

// Version is the current Plume release.
const Version = "0.2.0"
