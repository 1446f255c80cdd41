package profile

import (
	"math"

	"github.com/rohan/voicecv-cli/internal/types"
)

// completenessFields is the number of profile facets that count toward
// the completeness score.
const completenessFields = 8

// Completeness scores how filled-in a CV is as a rounded percentage.
// Eight facets count equally: name, email, phone, address, at least one
// experience entry, a degree, any skills, and at least one project.
func Completeness(cv *types.CV) int {
	if cv == nil {
		return 0
	}

	checks := []bool{
		cv.PersonalInfo.Name != "",
		cv.PersonalInfo.Email != "",
		cv.PersonalInfo.Phone != "",
		cv.PersonalInfo.Address != "",
		len(cv.Experience) > 0,
		cv.Education.Degree != "",
		cv.HasSkills(),
		len(cv.Projects) > 0,
	}

	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	return int(math.Round(float64(filled) / completenessFields * 100))
}
