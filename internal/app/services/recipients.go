package services

import (
	"strings"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/pkg/validation"
)

// subjectDepartments are the teaching departments. Staff filed under one
// of these count as teachers even when their role says otherwise.
var subjectDepartments = map[string]bool{
	"Mathematics": true,
	"Sciences":    true,
	"Languages":   true,
	"Humanities":  true,
	"Technical":   true,
}

// ResolveRecipients computes the deduplicated email list for a named
// audience segment from the student and staff rosters. Blank or
// malformed addresses are silently excluded; dedup preserves first-seen
// order. An empty result is not an error here, callers reject it before
// creating a campaign.
func ResolveRecipients(group models.RecipientGroup, students []*models.Student, staff []*models.Admin) []string {
	collect := func(predicate func(*models.Admin) bool) []string {
		emails := []string{}
		for _, s := range staff {
			if predicate(s) {
				emails = append(emails, s.Email)
			}
		}
		return emails
	}

	guardianEmails := func() []string {
		emails := []string{}
		for _, s := range students {
			emails = append(emails, s.GuardianEmail)
		}
		return emails
	}

	var raw []string
	switch group {
	case models.GroupParents:
		raw = guardianEmails()
	case models.GroupTeachers:
		raw = collect(func(s *models.Admin) bool {
			return s.Role == models.RoleTeacher || subjectDepartments[s.Department]
		})
	case models.GroupAdministration:
		raw = collect(func(s *models.Admin) bool {
			return s.Role == models.RolePrincipal || s.Role == models.RoleDeputyPrincipal ||
				s.Department == "Administration"
		})
	case models.GroupBOM:
		raw = collect(func(s *models.Admin) bool {
			return s.Role == models.RoleBOMMember ||
				strings.Contains(strings.ToLower(s.Position), "board")
		})
	case models.GroupSupport:
		raw = collect(func(s *models.Admin) bool {
			return s.Role == models.RoleSupportStaff || s.Role == models.RoleLibrarian ||
				s.Role == models.RoleCounselor
		})
	case models.GroupStaff:
		raw = collect(func(*models.Admin) bool { return true })
	default: // all
		raw = append(guardianEmails(), collect(func(*models.Admin) bool { return true })...)
	}

	seen := map[string]bool{}
	resolved := []string{}
	for _, email := range raw {
		email = strings.TrimSpace(email)
		if !validation.IsValidEmail(email) || seen[email] {
			continue
		}
		seen[email] = true
		resolved = append(resolved, email)
	}
	return resolved
}

// RecipientGroups lists the selectable audience segments for the console.
func RecipientGroups() []dto.RecipientGroupInfo {
	return []dto.RecipientGroupInfo{
		{Key: string(models.GroupParents), Label: "Parents and Guardians"},
		{Key: string(models.GroupTeachers), Label: "Teaching Staff"},
		{Key: string(models.GroupAdministration), Label: "Administration"},
		{Key: string(models.GroupBOM), Label: "Board of Management"},
		{Key: string(models.GroupSupport), Label: "Support Staff"},
		{Key: string(models.GroupStaff), Label: "All Staff"},
		{Key: string(models.GroupAll), Label: "Everyone"},
	}
}
