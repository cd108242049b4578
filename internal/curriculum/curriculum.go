// Package curriculum holds the fixed 8-module business curriculum. It is
// static reference data: the engine derives competency from progress against
// it but never modifies it.
package curriculum

// Module describes one unit of the curriculum.
type Module struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Objective        string   `json:"objective"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Topics           []string `json:"topics"`
	Competencies     []string `json:"competencies"`
}

var modules = []Module{
	{
		ID:               "business-foundations",
		Title:            "Business Foundations",
		Objective:        "Understand business models, value propositions and how a company makes money.",
		EstimatedMinutes: 90,
		Topics:           []string{"business models", "value proposition", "revenue streams"},
		Competencies:     []string{"can describe the company's business model", "can map value to customer segments"},
	},
	{
		ID:               "market-research",
		Title:            "Market Research",
		Objective:        "Size a market, segment customers and read competitor positioning.",
		EstimatedMinutes: 120,
		Topics:           []string{"market sizing", "customer segmentation", "competitive analysis"},
		Competencies:     []string{"can estimate an addressable market", "can build a competitor matrix"},
	},
	{
		ID:               "finance-essentials",
		Title:            "Finance Essentials",
		Objective:        "Read the three financial statements and track cash flow and unit economics.",
		EstimatedMinutes: 150,
		Topics:           []string{"income statement", "balance sheet", "cash flow", "unit economics"},
		Competencies:     []string{"can read a P&L", "can compute contribution margin"},
	},
	{
		ID:               "marketing-basics",
		Title:            "Marketing Basics",
		Objective:        "Plan positioning, channels and a basic acquisition funnel.",
		EstimatedMinutes: 120,
		Topics:           []string{"positioning", "channel strategy", "funnel metrics"},
		Competencies:     []string{"can draft a positioning statement", "can instrument a funnel"},
	},
	{
		ID:               "sales-and-negotiation",
		Title:            "Sales & Negotiation",
		Objective:        "Run a sales conversation from qualification to close.",
		EstimatedMinutes: 100,
		Topics:           []string{"qualification", "objection handling", "closing", "negotiation"},
		Competencies:     []string{"can qualify a lead", "can structure a negotiation"},
	},
	{
		ID:               "operations-management",
		Title:            "Operations Management",
		Objective:        "Design repeatable processes and spot bottlenecks.",
		EstimatedMinutes: 110,
		Topics:           []string{"process design", "capacity planning", "bottleneck analysis"},
		Competencies:     []string{"can document a core process", "can identify the constraint"},
	},
	{
		ID:               "compliance-and-legal",
		Title:            "Compliance & Legal",
		Objective:        "Know the contracts, registrations and obligations a small business carries.",
		EstimatedMinutes: 90,
		Topics:           []string{"contracts", "registrations", "data protection", "employment basics"},
		Competencies:     []string{"can review a standard contract", "can maintain a compliance checklist"},
	},
	{
		ID:               "leadership-and-growth",
		Title:            "Leadership & Growth",
		Objective:        "Delegate, build a team and plan the next stage of growth.",
		EstimatedMinutes: 130,
		Topics:           []string{"delegation", "hiring", "goal setting", "scaling"},
		Competencies:     []string{"can run a goal-setting cycle", "can plan a first hire"},
	},
}

// Modules returns the full ordered curriculum.
func Modules() []Module {
	return modules
}

// Total is the number of modules in the curriculum.
func Total() int {
	return len(modules)
}

// ByID looks up a module by its identifier.
func ByID(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}
