package matching

import "strings"

// locationScore reconciles a candidate's location and remote preference
// with a job's location and remote/hybrid flags. Rules are ordered; the
// first that applies wins.
func locationScore(preferredLocation, remotePreference, jobLocation string, isRemote, isHybrid bool) float64 {
	if isRemote && remotePreference == "remote" {
		return 100
	}

	if isHybrid && remotePreference == "hybrid" {
		return 100
	}

	if remotePreference == "remote" && !isRemote {
		return 30
	}

	if preferredLocation != "" && jobLocation != "" {
		pref := strings.ToLower(preferredLocation)
		jobLoc := strings.ToLower(jobLocation)

		if strings.Contains(pref, jobLoc) || strings.Contains(jobLoc, pref) {
			return 100
		}

		// Same trailing state/country component is a partial match.
		prefParts := strings.Split(pref, ",")
		jobParts := strings.Split(jobLoc, ",")
		if len(prefParts) > 1 && len(jobParts) > 1 {
			if strings.TrimSpace(prefParts[len(prefParts)-1]) == strings.TrimSpace(jobParts[len(jobParts)-1]) {
				return 70
			}
		}
	}

	if remotePreference == "any" {
		return 80
	}

	return 50
}
