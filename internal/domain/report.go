package domain

import (
	"fmt"
	"strings"
)

// FormatReport renders the rank-ordered textual summary of the selected
// impact sites. totalConsidered counts the objects that entered ranking,
// before the top-N cut. Uses the same numeric formats as the popup; derived
// entirely from already-computed values.
func FormatReport(totalConsidered int, sites []ImpactSite) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d Near Earth Objects. Showing top %d by size:\n\n", totalConsidered, len(sites))

	for _, site := range sites {
		fmt.Fprintf(&b, "%d. %s\n", site.Rank+1, site.NEO.Name)
		fmt.Fprintf(&b, "   Diameter: %.3f km\n", site.NEO.DiameterKM)
		fmt.Fprintf(&b, "   Velocity: %.2f km/s\n", site.NEO.VelocityKMPS)
		fmt.Fprintf(&b, "   Impact Energy: %.1f megatons\n", site.Effects.EnergyMegatons)
		fmt.Fprintf(&b, "   Crater: %.2f km diameter\n", site.Effects.CraterDiameterKM)
		fmt.Fprintf(&b, "   Severe damage: %.1f km radius\n", site.Effects.SevereDamageRadiusKM)
		fmt.Fprintf(&b, "   Hazardous: %s\n\n", yesNo(site.NEO.Hazardous))
	}

	return b.String()
}
