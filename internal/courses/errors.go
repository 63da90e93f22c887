package courses

import "errors"

// ErrNoCourse means no course could be found for a skill, from the catalog
// or from the model. Callers skip the skill rather than failing the plan.
var ErrNoCourse = errors.New("no course found")
