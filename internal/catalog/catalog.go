package catalog

import "strings"

// The catalogs below are the single source of truth for the dropdown
// data the clients render and the values timesheet blocks may carry.

var Departments = []string{
	"Innovative Manufacturing",
	"Smart Factory Center",
	"AR | VR | MR Research Centre",
	"Digital Technology",
	"Research Centre For PLM",
	"Research Centre For Asset Performance",
	"Product Innovation Center",
	"Predictive Engineering",
}

var ProjectCategories = []string{
	"Software",
	"AR/VR",
	"Engineering",
	"Training",
	"General",
}

// PhaseOptions lists the phases available per project category.
var PhaseOptions = map[string][]string{
	"Software":    {"Design", "Development", "Testing", "Release", "Bug Fix"},
	"AR/VR":       {"Design", "Development", "Testing", "Release", "Bug Fix"},
	"Engineering": {"Design", "Development", "Testing", "Release", "Bug Fix"},
	"Training":    {"Design", "Development", "Deployment"},
	"General":     {"Meeting"},
}

// TaskOptions lists the tasks available per category and phase.
var TaskOptions = map[string]map[string][]string{
	"Software": {
		"Design":      {"POC", "Architecture", "UI/UX"},
		"Development": {"Frontend", "Backend", "Parameter Tuning"},
		"Testing":     {"Unit Testing", "System Testing"},
		"Release":     {"Configuration Management", "Deploy"},
		"Bug Fix":     {"Error", "New Feature"},
	},
	"AR/VR": {
		"Design":      {"Storyboard", "3D Modeling", "Animation"},
		"Development": {"Unity Dev", "Augmented Reality", "Virtual Reality"},
		"Testing":     {"Unit Testing", "System Testing"},
		"Release":     {"Configuration Management", "Deploy"},
		"Bug Fix":     {"Error", "New Feature"},
	},
	"Engineering": {
		"Design":      {"POC", "Data Collection", "Simulation"},
		"Development": {"Mechanical", "Electrical", "Firmware", "Robotics"},
		"Testing":     {"Unit Testing", "System Testing"},
		"Release":     {"Configuration Management", "Deploy"},
		"Bug Fix":     {"Error", "New Feature"},
	},
	"Training": {
		"Design":      {"Curriculum Design"},
		"Development": {"Content Creation", "Assessment"},
		"Deployment":  {"Conduct Training", "Evaluation"},
	},
	"General": {
		"Meeting": {"Requirement Gathering", "Project Clarification", "Demo", "Others"},
	},
}

// ValidDepartment matches case-insensitively so stored data written by
// older clients keeps validating.
func ValidDepartment(dept string) bool {
	return containsFold(Departments, dept)
}

func ValidCategory(category string) bool {
	return containsFold(ProjectCategories, category)
}

// ValidPhase reports whether the phase exists for the category.
func ValidPhase(category, phase string) bool {
	phases, ok := lookupFold(PhaseOptions, category)
	return ok && containsFold(phases, phase)
}

// ValidTask reports whether the task exists for the category and phase.
func ValidTask(category, phase, task string) bool {
	byPhase, ok := lookupFold(TaskOptions, category)
	if !ok {
		return false
	}
	tasks, ok := lookupFold(byPhase, phase)
	return ok && containsFold(tasks, task)
}

func containsFold(list []string, value string) bool {
	value = strings.TrimSpace(value)
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

func lookupFold[V any](m map[string]V, key string) (V, bool) {
	key = strings.TrimSpace(key)
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	var zero V
	return zero, false
}
