package semcore

import "hollywool/seogen/internal/domain"

// Fallback builds the built-in sample core used when no semantic core file
// can be loaded. Four categories with enough content to classify and render
// a sensible description.
func Fallback() *domain.SemanticCore {
	core := domain.NewSemanticCore()

	core.Set(domain.CategoryYarn, &domain.CategoryData{
		Products: []domain.Product{
			{Slug: "merino-wool", URL: "/product/merino-wool/"},
			{Slug: "cotton-yarn", URL: "/product/cotton-yarn/"},
			{Slug: "alpaca-yarn", URL: "/product/alpaca-yarn/"},
		},
		Keywords: []string{
			"yarn", "wool", "knitting yarn", "crochet yarn", "merino wool",
			"cotton yarn", "alpaca yarn", "hand dyed yarn", "yarn for knitting",
			"yarn for crochet", "premium yarn", "soft yarn", "bulky yarn", "dk weight yarn",
		},
		InternalLinks: []domain.InternalLink{
			{Title: "Knitting Needles", URL: "/product-category/accessories/knitting-needles/"},
			{Title: "Crochet Hooks", URL: "/product-category/accessories/crochet-hooks/"},
			{Title: "Knitting Patterns", URL: "/product-category/patterns/knitting-patterns/"},
			{Title: "Crochet Patterns", URL: "/product-category/patterns/crochet-patterns/"},
		},
		FAQs: []domain.FAQ{
			{
				Question: "What is the difference between wool and acrylic yarn?",
				Answer:   "Wool is a natural fiber from sheep that provides warmth, breathability, and natural elasticity. Acrylic yarn is synthetic, more affordable, machine washable, and comes in vibrant colors. Wool is typically warmer and more durable but may require special care.",
			},
			{
				Question: "How much yarn do I need for a sweater?",
				Answer:   "For an adult sweater, you typically need 1000-1500 yards (900-1400 meters) of worsted weight yarn. The exact amount depends on the size, pattern complexity, and yarn weight. Always buy an extra skein to ensure you have enough for your project.",
			},
			{
				Question: "How do I prevent yarn from tangling?",
				Answer:   "To prevent yarn from tangling, use a yarn bowl or bag, work from the center pull of the skein, store yarn properly in bags or containers, and avoid pulling too much yarn at once. Wind hanks into balls before using them.",
			},
		},
	})

	core.Set(domain.CategoryNeedles, &domain.CategoryData{
		Products: []domain.Product{
			{Slug: "knitting-needles-set", URL: "/product/knitting-needles-set/"},
			{Slug: "circular-needles", URL: "/product/circular-needles/"},
		},
		Keywords: []string{
			"knitting", "knitting needles", "knitting patterns", "circular needles",
			"knitting for beginners", "knit stitches", "learn to knit",
			"knitting techniques", "knitting accessories", "knitting supplies",
		},
		InternalLinks: []domain.InternalLink{
			{Title: "Premium Yarn Selection", URL: "/product-category/yarn/"},
			{Title: "Knitting Pattern Books", URL: "/product-category/books/knitting-books/"},
			{Title: "Knitting Accessories", URL: "/product-category/accessories/"},
		},
		FAQs: []domain.FAQ{
			{
				Question: "What knitting needles are best for beginners?",
				Answer:   "Beginners should start with medium-sized straight needles (US size 7-9 or 4.5-5.5mm) made of wood or bamboo. These materials provide enough grip to prevent stitches from slipping while learning. Avoid very small or large needles until you've mastered the basics.",
			},
			{
				Question: "How do I read a knitting pattern?",
				Answer:   "Knitting patterns contain abbreviations, terminology, and instructions for creating a project. Start by understanding the skill level, materials, gauge, and abbreviations used. Follow the pattern row by row, paying attention to stitch counts and any special instructions.",
			},
		},
	})

	core.Set(domain.CategoryHooks, &domain.CategoryData{
		Products: []domain.Product{
			{Slug: "crochet-hooks-set", URL: "/product/crochet-hooks-set/"},
			{Slug: "ergonomic-crochet-hooks", URL: "/product/ergonomic-crochet-hooks/"},
		},
		Keywords: []string{
			"crochet", "crochet hooks", "crochet patterns", "amigurumi patterns",
			"crochet for beginners", "learn to crochet", "crochet stitches",
			"crochet techniques", "crochet accessories", "crochet supplies",
		},
		InternalLinks: []domain.InternalLink{
			{Title: "Quality Yarn for Crochet", URL: "/product-category/yarn/"},
			{Title: "Crochet Pattern Collections", URL: "/product-category/patterns/crochet-patterns/"},
			{Title: "Crochet Accessories", URL: "/product-category/accessories/crochet-accessories/"},
		},
		FAQs: []domain.FAQ{
			{
				Question: "What is the difference between knitting and crochet?",
				Answer:   "Knitting uses two needles to create rows of stitches, while crochet uses one hook to create stitches. Crochet generally creates a thicker fabric and is often easier for beginners to learn. Knitting typically produces a more elastic, drapey fabric that's ideal for garments.",
			},
			{
				Question: "What size crochet hook should a beginner use?",
				Answer:   "Beginners should start with a medium-sized hook (US size G/6 or H/8, or 4.0-5.0mm) and worsted weight yarn. These sizes are comfortable to hold and make stitches that are easy to see and count while learning the basic techniques.",
			},
		},
	})

	core.Set(domain.CategoryAccessories, &domain.CategoryData{
		Products: []domain.Product{
			{Slug: "yarn-winder", URL: "/product/yarn-winder/"},
			{Slug: "stitch-markers", URL: "/product/stitch-markers/"},
			{Slug: "yarn-bowl", URL: "/product/yarn-bowl/"},
		},
		Keywords: []string{
			"knitting tools", "crochet tools", "yarn winder", "yarn swift",
			"stitch markers", "row counters", "blocking mats", "yarn bowl",
			"measuring tape", "scissors for yarn", "knitting accessories",
		},
		InternalLinks: []domain.InternalLink{
			{Title: "Premium Yarn", URL: "/product-category/yarn/"},
			{Title: "Knitting Needles", URL: "/product-category/accessories/knitting-needles/"},
			{Title: "Crochet Hooks", URL: "/product-category/accessories/crochet-hooks/"},
		},
		FAQs: []domain.FAQ{
			{
				Question: "What are essential tools for knitting?",
				Answer:   "Essential knitting tools include: knitting needles, yarn, scissors, tape measure, stitch markers, yarn needle, and a row counter. Additional helpful tools are cable needles, stitch holders, blocking mats, and a project bag to keep everything organized.",
			},
			{
				Question: "How do I use a yarn bowl?",
				Answer:   "Place your ball of yarn in the yarn bowl with the working end fed through the spiral cutout or J-shaped slot. This allows the yarn to flow smoothly while knitting or crocheting, preventing the ball from rolling away or getting tangled.",
			},
		},
	})

	return core
}
