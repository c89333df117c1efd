package services

import "threatlens/internal/domain/models"

// actorCatalog is the embedded APT group knowledge base. Slice order is
// the documented catalog iteration order and breaks attribution ties.
var actorCatalog = []models.ActorProfile{
	{
		Name:           "APT28",
		Aliases:        []string{"APT28", "Fancy Bear", "Sofacy", "Pawn Storm"},
		Origin:         "Russia",
		Sponsor:        "GRU (Russian Military Intelligence)",
		ActiveSince:    2007,
		Targets:        []string{"government", "military", "defense", "nato", "ukraine", "political"},
		Tools:          []string{"X-Agent", "Sofacy", "LoJax", "Zebrocy"},
		TTPs:           []string{"spear phishing", "credential harvesting", "exploit"},
		Motivation:     "Espionage, Political Intelligence",
		Sophistication: "High",
	},
	{
		Name:           "APT29",
		Aliases:        []string{"APT29", "Cozy Bear", "The Dukes", "Nobelium"},
		Origin:         "Russia",
		Sponsor:        "SVR (Foreign Intelligence Service)",
		ActiveSince:    2008,
		Targets:        []string{"government", "diplomatic", "energy", "healthcare", "research"},
		Tools:          []string{"SolarWinds", "Cobalt Strike", "WellMess", "WellMail"},
		TTPs:           []string{"supply chain", "stealth", "persistence", "cloud"},
		Motivation:     "Intelligence Collection, Long-term Espionage",
		Sophistication: "Very High",
	},
	{
		Name:           "Lazarus Group",
		Aliases:        []string{"Lazarus Group", "Hidden Cobra", "APT38", "Guardians of Peace"},
		Origin:         "North Korea",
		Sponsor:        "Reconnaissance General Bureau",
		ActiveSince:    2009,
		Targets:        []string{"financial", "cryptocurrency", "defense", "media", "entertainment"},
		Tools:          []string{"WannaCry", "RATANKBA", "PowerRatankba", "AppleJeus"},
		TTPs:           []string{"ransomware", "destructive attacks", "financial theft", "cryptocurrency"},
		Motivation:     "Financial Gain, Sanctions Evasion, Disruption",
		Sophistication: "High",
	},
	{
		Name:           "APT41",
		Aliases:        []string{"APT41", "Wicked Panda", "Double Dragon"},
		Origin:         "China",
		Sponsor:        "Ministry of State Security (suspected)",
		ActiveSince:    2012,
		Targets:        []string{"healthcare", "telecom", "gaming", "technology", "manufacturing"},
		Tools:          []string{"MESSAGETAP", "POISONPLUG", "HIGHNOON"},
		TTPs:           []string{"supply chain", "ransomware", "data theft", "intellectual property"},
		Motivation:     "Dual Purpose: Espionage and Financial",
		Sophistication: "Very High",
	},
	{
		Name:           "APT33",
		Aliases:        []string{"APT33", "Elfin", "Refined Kitten"},
		Origin:         "Iran",
		Sponsor:        "Iranian Government",
		ActiveSince:    2013,
		Targets:        []string{"aviation", "energy", "petrochemical", "government"},
		Tools:          []string{"Shamoon", "SHAPESHIFT", "DROPSHOT"},
		TTPs:           []string{"spear phishing", "destructive malware", "reconnaissance"},
		Motivation:     "Espionage, Sabotage",
		Sophistication: "Medium-High",
	},
	{
		Name:           "Turla",
		Aliases:        []string{"Turla", "Snake", "Uroburos", "Waterbug"},
		Origin:         "Russia",
		Sponsor:        "FSB (Federal Security Service)",
		ActiveSince:    1996,
		Targets:        []string{"government", "diplomatic", "military", "research"},
		Tools:          []string{"Snake", "Uroburos", "Epic Turla", "Neuron"},
		TTPs:           []string{"watering hole", "hijacking", "satellite communications"},
		Motivation:     "Espionage, Long-term Intelligence",
		Sophistication: "Very High",
	},
	{
		Name:           "Equation Group",
		Aliases:        []string{"Equation Group", "EQUATION"},
		Origin:         "United States",
		Sponsor:        "NSA (suspected)",
		ActiveSince:    2001,
		Targets:        []string{"telecommunications", "government", "military", "infrastructure"},
		Tools:          []string{"EQUATION", "DoubleFantasy", "GrayFish", "Fanny"},
		TTPs:           []string{"firmware implants", "advanced persistence", "supply chain"},
		Motivation:     "Intelligence Collection, Cyber Warfare Capability",
		Sophistication: "Extremely High",
	},
	{
		Name:           "APT10",
		Aliases:        []string{"APT10", "MenuPass", "Stone Panda", "Cloud Hopper"},
		Origin:         "China",
		Sponsor:        "Ministry of State Security",
		ActiveSince:    2009,
		Targets:        []string{"managed service providers", "technology", "aerospace", "government"},
		Tools:          []string{"PlugX", "Poison Ivy", "ChChes", "RedLeaves"},
		TTPs:           []string{"spear phishing", "MSP compromise", "lateral movement"},
		Motivation:     "Intellectual Property Theft, Espionage",
		Sophistication: "High",
	},
}
