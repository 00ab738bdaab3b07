package catalog

// Default returns the built-in five-competency catalog. It seeds the portal
// on first start and serves as the fallback when a persisted snapshot cannot
// be read.
func Default() []Module {
	return []Module{
		{
			ID:          "digcomp-1",
			Title:       "Information & Data Literacy",
			Topic:       "Finding, filtering and evaluating digital data.",
			Description: "Identifying, locating, retrieving, storing, organising and analysing digital information.",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			PDFURL:      "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Content: "Information literacy is more than searching the web. It means telling " +
				"fact from hoax and understanding how search algorithms decide what you see.",
			AssignmentInstruction: "Write a summary of three ways to verify the accuracy of online news.",
			Icon:                  "BookOpen",
			Questions: []Question{
				{
					ID:   "q1",
					Text: "Which of the following marks a credible information source?",
					Options: []Option{
						{ID: "a", Text: "A highly provocative headline"},
						{ID: "b", Text: "A named author and clear references"},
						{ID: "c", Text: "No publication date"},
						{ID: "d", Text: "Only available on social media"},
					},
					CorrectOptionID: "b",
					Points:          10,
				},
				{
					ID:   "q2",
					Text: "What is the safest first step when a surprising news story appears in your feed?",
					Options: []Option{
						{ID: "a", Text: "Share it immediately so others can judge"},
						{ID: "b", Text: "Check whether other independent outlets report it"},
						{ID: "c", Text: "Trust it if it has many likes"},
						{ID: "d", Text: "Ignore the source entirely"},
					},
					CorrectOptionID: "b",
					Points:          10,
				},
			},
		},
		{
			ID:          "digcomp-2",
			Title:       "Communication & Collaboration",
			Topic:       "Interacting through digital technologies.",
			Description: "Sharing through digital tools, managing a digital identity, and netiquette.",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			PDFURL:      "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Content: "Netiquette is the etiquette of digital communication. Knowing how to " +
				"collaborate with tools such as shared workspaces is key in modern work.",
			AssignmentInstruction: "List five core netiquette rules for discussions in a formal forum.",
			Icon:                  "MessageSquare",
			Questions:             []Question{},
		},
		{
			ID:          "digcomp-3",
			Title:       "Digital Content Creation",
			Topic:       "Creating and editing new content.",
			Description: "Expressing yourself through digital media and understanding copyright.",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			PDFURL:      "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Content: "Covers developing, integrating and re-elaborating digital content. " +
				"Understanding Creative Commons licensing matters here.",
			AssignmentInstruction: "Describe the difference between copyright and Creative Commons licences.",
			Icon:                  "PenTool",
			Questions:             []Question{},
		},
		{
			ID:          "digcomp-4",
			Title:       "Digital Safety",
			Topic:       "Protecting devices and personal data.",
			Description: "Understanding cyber risk and protecting digital well-being.",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			PDFURL:      "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Content: "Safety covers physical protection of devices as well as data protection " +
				"through encryption and two-factor authentication.",
			AssignmentInstruction: "Explain the steps to enable two-factor authentication on your mail account.",
			Icon:                  "ShieldCheck",
			Questions:             []Question{},
		},
		{
			ID:          "digcomp-5",
			Title:       "Problem Solving",
			Topic:       "Identifying needs and technological responses.",
			Description: "Resolving technical problems and keeping your own competences current.",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			PDFURL:      "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Content: "The ability to identify technical problems when operating devices and to " +
				"find creative solutions with digital tools.",
			AssignmentInstruction: "Propose a recovery plan for a computer that suddenly shows a blue screen.",
			Icon:                  "Lightbulb",
			Questions:             []Question{},
		},
	}
}
