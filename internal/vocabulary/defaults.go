package vocabulary

// Default returns the stock tables. Every call builds fresh slices and maps.
func Default() Tables {
	return Tables{
		MatchMode: MatchWord,

		SkillCategories: []SkillCategory{
			{Name: "programming", Weight: 0.30, Tokens: []string{
				"python", "java", "javascript", "typescript", "go", "golang", "rust", "c++", "c#",
				"ruby", "php", "swift", "kotlin", "scala", "elixir",
			}},
			{Name: "frameworks", Weight: 0.25, Tokens: []string{
				"react", "angular", "vue", "django", "flask", "fastapi", "spring", "express",
				"node.js", "rails", "laravel", ".net", "next.js",
			}},
			{Name: "databases", Weight: 0.15, Tokens: []string{
				"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch", "sqlite",
				"cassandra", "dynamodb", "oracle",
			}},
			{Name: "cloud", Weight: 0.15, Tokens: []string{
				"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "terraform", "heroku",
			}},
			{Name: "tools", Weight: 0.10, Tokens: []string{
				"git", "jenkins", "jira", "ci/cd", "linux", "ansible", "grafana", "prometheus", "kafka",
			}},
			{Name: "languages", Weight: 0.05, Tokens: []string{
				"english", "spanish", "german", "french", "portuguese", "chinese",
			}},
		},

		// Checked in slice order; the first level with a hit wins.
		LevelKeywords: []LevelKeywords{
			{Level: LevelManager, Keywords: []string{"manager", "head of", "director", "vp"}},
			{Level: LevelLead, Keywords: []string{"lead", "principal", "staff", "architect"}},
			{Level: LevelSenior, Keywords: []string{"senior", "sr."}},
			{Level: LevelJunior, Keywords: []string{"junior", "jr."}},
			{Level: LevelEntry, Keywords: []string{"entry level", "entry-level", "intern", "internship", "graduate", "trainee"}},
			{Level: LevelMid, Keywords: []string{"mid-level", "mid level", "intermediate"}},
		},

		RemoteKeywords: []string{"remote", "anywhere", "worldwide", "work from home"},

		Regions: []Region{
			{Name: "north america", Locations: []string{
				"usa", "united states", "canada", "new york", "san francisco", "seattle", "boston",
				"austin", "los angeles", "chicago", "toronto", "vancouver", "ca", "ny", "wa", "tx",
			}},
			{Name: "europe", Locations: []string{
				"europe", "uk", "united kingdom", "germany", "france", "netherlands", "spain",
				"switzerland", "london", "berlin", "paris", "amsterdam", "madrid", "zurich", "dublin",
			}},
			{Name: "asia", Locations: []string{
				"asia", "india", "singapore", "japan", "china", "bangalore", "tokyo", "shanghai",
			}},
			{Name: "latin america", Locations: []string{
				"latam", "latin america", "brazil", "mexico", "argentina", "sao paulo", "buenos aires",
			}},
		},

		// Lower ranks first: the lowest mentioned degree is the requirement.
		DegreeKeywords: []DegreeKeywords{
			{Degree: DegreeAssociate, Keywords: []string{"associate degree", "associate's", "associate of"}},
			{Degree: DegreeBachelor, Keywords: []string{"bachelor", "bachelor's", "bsc", "b.sc", "b.s.", "undergraduate"}},
			{Degree: DegreeMaster, Keywords: []string{"master", "master's", "msc", "m.sc", "m.s.", "mba"}},
			{Degree: DegreeDoctorate, Keywords: []string{"phd", "ph.d", "doctorate", "doctoral"}},
		},
		NoDegreePhrases: []string{"no degree required", "degree not required", "no degree needed"},
		DefaultDegree:   DegreeBachelor,
		DefaultLevel:    LevelMid,

		Weights: ScoreWeights{
			Skill:      0.35,
			Experience: 0.25,
			Location:   0.15,
			Education:  0.15,
			Salary:     0.10,
		},
		Confidence: ConfidenceWeights{
			Base:       0.20,
			Experience: 0.25,
			Skills:     0.25,
			Education:  0.15,
			Location:   0.15,
		},
		LevelDistance: LevelDistance{
			Over:  []float64{1.0, 0.8, 0.6, 0.4},
			Under: []float64{1.0, 0.6, 0.3, 0.1},
		},
		LocationScores: LocationScores{
			Missing:  0.5,
			Remote:   0.9,
			Exact:    1.0,
			Region:   0.6,
			Mismatch: 0.2,
		},
		NeutralScore:    0.5,
		ExperienceFloor: 0.1,

		BaseSalaries: map[string]SalaryBand{
			LevelEntry:   {Min: 40000, Max: 60000, Avg: 50000},
			LevelJunior:  {Min: 55000, Max: 80000, Avg: 67500},
			LevelMid:     {Min: 75000, Max: 110000, Avg: 92500},
			LevelSenior:  {Min: 100000, Max: 150000, Avg: 125000},
			LevelLead:    {Min: 130000, Max: 180000, Avg: 155000},
			LevelManager: {Min: 140000, Max: 200000, Avg: 170000},
		},
		LocationMultipliers: []Multiplier{
			{Key: "san francisco", Value: 1.5},
			{Key: "new york", Value: 1.4},
			{Key: "zurich", Value: 1.4},
			{Key: "seattle", Value: 1.35},
			{Key: "boston", Value: 1.3},
			{Key: "los angeles", Value: 1.3},
			{Key: "london", Value: 1.25},
			{Key: "austin", Value: 1.15},
			{Key: "berlin", Value: 1.1},
			{Key: "toronto", Value: 1.1},
			{Key: "amsterdam", Value: 1.1},
		},
		RemoteMultiplier: 0.9,
		PremiumSkills: []Multiplier{
			{Key: "machine learning", Value: 1.15},
			{Key: "deep learning", Value: 1.15},
			{Key: "ai", Value: 1.10},
			{Key: "tensorflow", Value: 1.10},
			{Key: "pytorch", Value: 1.10},
			{Key: "blockchain", Value: 1.10},
			{Key: "rust", Value: 1.08},
			{Key: "kubernetes", Value: 1.08},
			{Key: "aws", Value: 1.05},
		},
		MaxSkillPremium: 1.30,
		IndustryMultipliers: []Multiplier{
			{Key: "fintech", Value: 1.15},
			{Key: "crypto", Value: 1.15},
			{Key: "bank", Value: 1.10},
			{Key: "finance", Value: 1.10},
			{Key: "enterprise", Value: 1.05},
			{Key: "healthcare", Value: 1.05},
			{Key: "startup", Value: 0.95},
			{Key: "gaming", Value: 0.95},
			{Key: "government", Value: 0.90},
			{Key: "nonprofit", Value: 0.85},
			{Key: "non-profit", Value: 0.85},
		},
		EducationMultipliers: map[string]float64{
			DegreeNone:      0.95,
			DegreeAssociate: 0.98,
			DegreeBachelor:  1.0,
			DegreeMaster:    1.10,
			DegreeDoctorate: 1.20,
		},

		TopCompanies: 10,
	}
}
