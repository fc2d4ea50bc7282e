package catalog

func init() {
	g = buildGraph(seedConcepts())
}

// seedConcepts returns the static concept catalog. Order matters: Detect
// evaluates patterns in this order, so detection results are deterministic.
func seedConcepts() []Concept {
	return []Concept{
		{
			ID:          "arithmetic_operations",
			Name:        "Arithmetic Operations",
			Category:    CategoryArithmetic,
			Difficulty:  DifficultyEasy,
			ProblemKind: "computation",
			Aliases:     []string{"arithmetic", "basic math", "addition", "subtraction", "multiplication", "division"},
			Patterns: []string{
				`\d\s*[+×÷]\s*\d`,
				`\b(add|sum|plus|subtract|difference|minus|multiply|product|times|divide|quotient)\b`,
			},
		},
		{
			ID:            "order_of_operations",
			Name:          "Order of Operations",
			Category:      CategoryArithmetic,
			Difficulty:    DifficultyEasy,
			ProblemKind:   "computation",
			Aliases:       []string{"order of operations", "pemdas", "bodmas"},
			Patterns:      []string{`\b(pemdas|bodmas|order of operations)\b`},
			Prerequisites: []string{"arithmetic_operations"},
		},
		{
			ID:            "negative_numbers",
			Name:          "Negative Numbers",
			Category:      CategoryArithmetic,
			Difficulty:    DifficultyEasy,
			ProblemKind:   "computation",
			Aliases:       []string{"negative numbers", "integers", "signed numbers"},
			Patterns:      []string{`\bnegative\b`, `below zero`, `\(-\d+\)`},
			Prerequisites: []string{"arithmetic_operations"},
		},
		{
			ID:            "fractions",
			Name:          "Fractions",
			Category:      CategoryArithmetic,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "computation",
			Aliases:       []string{"fractions", "fraction"},
			Patterns:      []string{`\d+\s*/\s*\d+`, `\b(fraction|numerator|denominator|mixed number)\b`},
			Prerequisites: []string{"arithmetic_operations"},
			Related:       []string{"decimals"},
		},
		{
			ID:            "decimals",
			Name:          "Decimals",
			Category:      CategoryArithmetic,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "computation",
			Aliases:       []string{"decimals", "decimal numbers"},
			Patterns:      []string{`\d+\.\d+`, `\bdecimal\b`},
			Prerequisites: []string{"arithmetic_operations"},
			Related:       []string{"percentages"},
		},
		{
			ID:            "percentages",
			Name:          "Percentages",
			Category:      CategoryArithmetic,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "word-problem",
			Aliases:       []string{"percentages", "percents", "percent"},
			Patterns:      []string{`\d+(\.\d+)?\s*%`, `\bpercent(age)?\b`},
			Prerequisites: []string{"fractions", "decimals"},
		},
		{
			ID:            "ratios_proportions",
			Name:          "Ratios & Proportions",
			Category:      CategoryArithmetic,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "word-problem",
			Aliases:       []string{"ratios", "proportions", "rates"},
			Patterns:      []string{`\b(ratio|proportion(al)?|unit rate)\b`, `\d+\s*:\s*\d+`},
			Prerequisites: []string{"fractions"},
			Related:       []string{"percentages"},
		},
		{
			ID:            "exponents",
			Name:          "Exponents",
			Category:      CategoryAlgebra,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "computation",
			Aliases:       []string{"exponents", "powers"},
			Patterns:      []string{`\b(exponent|power of|squared|cubed)\b`, `\^\d`},
			Prerequisites: []string{"arithmetic_operations"},
			Related:       []string{"square_roots"},
		},
		{
			ID:            "square_roots",
			Name:          "Square Roots",
			Category:      CategoryAlgebra,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "computation",
			Aliases:       []string{"square roots", "radicals"},
			Patterns:      []string{`\b(square root|radical)\b`, `√`},
			Prerequisites: []string{"exponents"},
		},
		{
			ID:          "linear_equations",
			Name:        "Linear Equations",
			Category:    CategoryAlgebra,
			Difficulty:  DifficultyMedium,
			ProblemKind: "equation",
			Aliases:     []string{"algebra", "linear equations", "solving equations", "solve for x"},
			Patterns: []string{
				`solve\s+for\s+[a-z]\b`,
				`\b\d*[a-z]\s*[+-]\s*\d+\s*=`,
				`=\s*\d*[a-z]\b`,
				`\blinear equation\b`,
			},
			Prerequisites: []string{"arithmetic_operations", "negative_numbers"},
			Related:       []string{"inequalities", "graphing"},
		},
		{
			ID:            "inequalities",
			Name:          "Inequalities",
			Category:      CategoryAlgebra,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "equation",
			Aliases:       []string{"algebra", "inequalities"},
			Patterns:      []string{`\binequalit(y|ies)\b`, `[<>]=?\s*\d`, `\b(at least|at most|no more than)\b`},
			Prerequisites: []string{"linear_equations"},
		},
		{
			ID:            "systems_of_equations",
			Name:          "Systems of Equations",
			Category:      CategoryAlgebra,
			Difficulty:    DifficultyHard,
			ProblemKind:   "equation",
			Aliases:       []string{"algebra", "systems of equations", "simultaneous equations"},
			Patterns:      []string{`\b(system of equations|simultaneous(ly)? solve|substitution method|elimination method)\b`},
			Prerequisites: []string{"linear_equations"},
		},
		{
			ID:            "quadratic_equations",
			Name:          "Quadratic Equations",
			Category:      CategoryAlgebra,
			Difficulty:    DifficultyHard,
			ProblemKind:   "equation",
			Aliases:       []string{"algebra", "quadratics", "quadratic equations"},
			Patterns:      []string{`\bquadratic\b`, `[a-z]\^2`, `[a-z]²`, `\bparabola\b`},
			Prerequisites: []string{"linear_equations", "exponents"},
			Related:       []string{"factoring"},
		},
		{
			ID:            "factoring",
			Name:          "Factoring",
			Category:      CategoryAlgebra,
			Difficulty:    DifficultyHard,
			ProblemKind:   "computation",
			Aliases:       []string{"factoring", "factorization"},
			Patterns:      []string{`\bfactor(ing|ize|ise)?\b`, `\b(greatest common factor|gcf)\b`},
			Prerequisites: []string{"exponents"},
		},
		{
			ID:            "graphing",
			Name:          "Graphing",
			Category:      CategoryAlgebra,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "graph",
			Aliases:       []string{"graphing", "coordinate plane", "slope"},
			Patterns:      []string{`\b(graph|slope|y-intercept|coordinate|plot)\b`},
			Prerequisites: []string{"linear_equations"},
			Related:       []string{"functions"},
		},
		{
			ID:            "functions",
			Name:          "Functions",
			Category:      CategoryAlgebra,
			Difficulty:    DifficultyHard,
			ProblemKind:   "equation",
			Aliases:       []string{"functions", "function notation"},
			Patterns:      []string{`\bfunction\b`, `f\s*\(\s*[a-z]\s*\)`, `\b(domain|range)\b`},
			Prerequisites: []string{"linear_equations"},
		},
		{
			ID:            "geometry_basics",
			Name:          "Geometry Basics",
			Category:      CategoryGeometry,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "word-problem",
			Aliases:       []string{"geometry", "shapes", "angles"},
			Patterns:      []string{`\b(angle|triangle|rectangle|circle|perimeter|area|volume|polygon)\b`},
			Prerequisites: []string{"arithmetic_operations"},
		},
		{
			ID:            "pythagorean_theorem",
			Name:          "Pythagorean Theorem",
			Category:      CategoryGeometry,
			Difficulty:    DifficultyHard,
			ProblemKind:   "word-problem",
			Aliases:       []string{"pythagorean theorem", "right triangles"},
			Patterns:      []string{`\b(pythagorean|hypotenuse|right triangle)\b`},
			Prerequisites: []string{"geometry_basics", "square_roots"},
		},
		{
			ID:            "statistics_basics",
			Name:          "Statistics Basics",
			Category:      CategoryData,
			Difficulty:    DifficultyMedium,
			ProblemKind:   "word-problem",
			Aliases:       []string{"statistics", "data", "probability", "averages"},
			Patterns:      []string{`\b(mean|median|mode|average|probability|likelihood)\b`},
			Prerequisites: []string{"arithmetic_operations", "fractions"},
		},
	}
}
