package validator

import (
	"fmt"
	"strings"
)

// autoVarPrefix is the sigil-qualified namespace of generated variables.
const autoVarPrefix = "$colony"

// predefinedAutoVars are environment-level built-ins that are valid
// regardless of the positional grammar. Matched case-insensitively.
var predefinedAutoVars = map[string]struct{}{
	"$colony.environment.id":                 {},
	"$colony.environment.virtual_network_id": {},
	"$colony.environment.public_address":     {},
}

// validateAutoVariable checks a dot-separated colony-generated variable
// reference of the form $colony.<namespace>.<name>.<field>[.<sub>]. It
// returns either success or a message describing the violation; malformed
// input never produces anything but a message.
//
// Keyword segments (the prefix, the namespace, dns, outputs) are compared
// case-insensitively; application and service names are exact matches
// against this blueprint's declarations. Whether the referenced resource
// also appears in the consumer's depends_on list is deliberately not
// checked here.
func (v *Validator) validateAutoVariable(name string) (bool, string) {
	if _, ok := predefinedAutoVars[strings.ToLower(name)]; ok {
		return true, ""
	}

	generic := fmt.Sprintf("%s is not a valid colony-generated variable", name)

	parts := strings.Split(name, ".")
	if !strings.EqualFold(parts[0], autoVarPrefix) {
		return false, generic
	}
	if len(parts) < 2 ||
		(!strings.EqualFold(parts[1], "applications") && !strings.EqualFold(parts[1], "services")) {
		return false, generic
	}

	switch len(parts) {
	case 4:
		// $colony.<ns>.<name>.dns is valid for any resource name; no
		// catalog lookup happens at this length.
		if !strings.EqualFold(parts[3], "dns") {
			return false, generic
		}
		return true, ""

	case 5:
		namespace := strings.ToLower(parts[1])
		field := strings.ToLower(parts[3])
		if namespace == "applications" && field != "outputs" && field != "dns" {
			return false, generic
		}
		if namespace == "services" && field != "outputs" {
			return false, generic
		}

		if namespace == "applications" {
			if _, ok := v.appNames[parts[2]]; !ok {
				return false, fmt.Sprintf("%s is not a valid colony-generated variable (no such app in the blueprint)", name)
			}
			if _, ok := toSet(v.apps.DeclaredOutputs(parts[2]))[parts[4]]; !ok {
				return false, fmt.Sprintf("%s is not a valid colony-generated variable ('%s' does not have the output '%s')",
					name, parts[2], parts[4])
			}
			return true, ""
		}

		if _, ok := v.serviceNames[parts[2]]; !ok {
			return false, fmt.Sprintf("%s is not a valid colony-generated variable (no such service in the blueprint)", name)
		}
		if _, ok := toSet(v.services.DeclaredOutputs(parts[2]))[parts[4]]; !ok {
			return false, fmt.Sprintf("%s is not a valid colony-generated variable ('%s' does not have the output '%s')",
				name, parts[2], parts[4])
		}
		return true, ""

	default:
		return false, fmt.Sprintf("%s is not a valid colony-generated variable (too many parts)", name)
	}
}
