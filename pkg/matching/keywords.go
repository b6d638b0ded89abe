package matching

// CategoryKeywords maps a special category tag to the literal phrases that
// signal it in record text.
var CategoryKeywords = map[string][]string{
	"first-gen":     {"first generation", "first-gen", "first gen"},
	"minority":      {"minority", "diverse", "diversity", "underrepresented"},
	"veteran":       {"veteran", "military", "service", "armed forces"},
	"international": {"international", "foreign", "global"},
	"athlete":       {"athlete", "sports", "athletic"},
	"disability":    {"disability", "disabled", "accessible", "special needs"},
	"lgbtq":         {"lgbtq", "lgbt", "gender", "identity", "queer", "gay", "lesbian"},
}

// InterestKeywords maps an interest tag to its phrases.
var InterestKeywords = map[string][]string{
	"stem":            {"science", "technology", "engineering", "math", "stem", "research"},
	"arts":            {"art", "music", "theater", "design", "creative", "humanities"},
	"business":        {"business", "entrepreneur", "finance", "marketing", "management"},
	"healthcare":      {"health", "medical", "nursing", "medicine", "dental", "pharmacy"},
	"education":       {"education", "teaching", "teacher", "school"},
	"social-sciences": {"social", "psychology", "sociology", "anthropology", "political"},
	"law":             {"law", "legal", "justice", "attorney", "paralegal"},
}
