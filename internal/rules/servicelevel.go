package rules

import (
	"fmt"
	"strings"

	"sepalint/internal/document"
	"sepalint/internal/validation"
)

// ServiceLevelInstant is the code marking a batch as an expedited/instant
// payment, which activates the instant amount ceiling.
const ServiceLevelInstant = "URGP"

// allowedServiceLevels enumerates the service level codes banks process.
var allowedServiceLevels = []string{"SEPA", "URGP", "SDVA", "NURG"}

// ServiceLevelRule warns about unknown service level codes. Unknown codes
// are advisory: the receiving bank may still process the batch at standard
// priority.
type ServiceLevelRule struct{}

func (ServiceLevelRule) ID() string   { return "service_level" }
func (ServiceLevelRule) Name() string { return "Service level" }

func (r ServiceLevelRule) Apply(root *document.Element, sess *validation.Session) {
	ok := true
	for _, svc := range root.Descendants("SvcLvl") {
		cd := svc.Child("Cd")
		if cd == nil || cd.Text() == "" {
			continue
		}
		if !allowed(cd.Text()) {
			ok = false
			sess.Add(cd, validation.SeverityWarning, "Service level",
				fmt.Sprintf("unknown service level: %s (allowed: %s)",
					cd.Text(), strings.Join(allowedServiceLevels, ", ")))
		}
	}
	sess.SetCheck(r.ID(), ok)
}

func allowed(code string) bool {
	for _, c := range allowedServiceLevels {
		if code == c {
			return true
		}
	}
	return false
}
