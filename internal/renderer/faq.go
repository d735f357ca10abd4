package renderer

import (
	"fmt"
	"strings"

	"hollywool/seogen/internal/domain"
	"hollywool/seogen/internal/extractor"
)

// faqsHTML renders up to three questions as a schema.org FAQPage block.
// Registry entries come first; category fallback questions fill the rest.
func faqsHTML(p Params, data *domain.CategoryData) string {
	var faqs []domain.FAQ
	for _, f := range data.FAQs {
		if f.Question != "" && f.Answer != "" {
			faqs = append(faqs, domain.FAQ{
				Question: extractor.Sanitize(f.Question),
				Answer:   extractor.Sanitize(f.Answer),
			})
		}
		if len(faqs) == 3 {
			break
		}
	}
	for _, f := range fallbackFAQs(p) {
		if len(faqs) == 3 {
			break
		}
		faqs = append(faqs, f)
	}

	var b strings.Builder
	b.WriteString("<div class=\"product-faq\" itemscope itemtype=\"https://schema.org/FAQPage\">\n")
	for _, f := range faqs {
		b.WriteString("  <div class=\"faq-item\" itemscope itemprop=\"mainEntity\" itemtype=\"https://schema.org/Question\">\n")
		fmt.Fprintf(&b, "    <h4 class=\"faq-question\" itemprop=\"name\">%s</h4>\n", f.Question)
		b.WriteString("    <div itemscope itemprop=\"acceptedAnswer\" itemtype=\"https://schema.org/Answer\">\n")
		fmt.Fprintf(&b, "      <p class=\"faq-answer\" itemprop=\"text\">%s</p>\n", f.Answer)
		b.WriteString("    </div>\n")
		b.WriteString("  </div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func fallbackFAQs(p Params) []domain.FAQ {
	name := p.ProductName
	fiber := strings.ToLower(p.Specs.FiberContent)

	switch p.Category {
	case domain.CategoryYarn:
		projects := fmt.Sprintf("%s is versatile and suitable for a wide range of projects including sweaters, accessories, home decor items, and garments. Its qualities make it perfect for both beginner and advanced crafters looking to create beautiful, long-lasting items.", name)
		switch {
		case strings.Contains(fiber, "alpaca"):
			projects = fmt.Sprintf("With its soft alpaca blend, %s is perfect for cozy sweaters, scarves, shawls, and accessories that will be in contact with skin. The natural properties of alpaca make it incredibly warm yet lightweight, ideal for winter garments.", name)
		case strings.Contains(fiber, "cotton"):
			projects = fmt.Sprintf("%s is ideal for summer garments, baby items, home decor, and accessories due to its cotton content. It offers excellent stitch definition and creates breathable, comfortable items suitable for warmer weather.", name)
		case strings.Contains(fiber, "wool"):
			projects = fmt.Sprintf("%s works beautifully for sweaters, cardigans, hats, mittens, and cold-weather accessories. Its wool content provides excellent warmth, durability and a beautiful drape for a variety of knitting and crochet projects.", name)
		}

		care := "We recommend hand washing with cold water and mild soap, then laying flat to dry. Always check the yarn label for specific care instructions, as the fiber content will determine the best care method for your finished items."
		switch {
		case strings.Contains(fiber, "wool"), strings.Contains(fiber, "alpaca"):
			care = fmt.Sprintf("For best results, hand wash items made with %s in cold water using a mild wool wash. Gently squeeze out excess water without wringing, then lay flat to dry away from direct sunlight. Avoid using fabric softeners as they may damage the natural fibers.", name)
		case strings.Contains(fiber, "cotton"):
			care = fmt.Sprintf("Items made with %s can be machine washed on a gentle cycle with cold water. Use a mild detergent and avoid bleach. Lay flat to dry or tumble dry on low heat. To maintain shape, we recommend blocking after washing.", name)
		}

		return []domain.FAQ{
			{
				Question: fmt.Sprintf("What projects is %s best suited for?", name),
				Answer:   projects,
			},
			{
				Question: fmt.Sprintf("How do I care for items made with %s?", name),
				Answer:   care,
			},
			{
				Question: fmt.Sprintf("Do you offer international shipping for %s?", name),
				Answer:   fmt.Sprintf("Yes, we ship %s internationally. Shipping rates and delivery times vary based on your location. Orders over €50 qualify for free shipping to many European countries. All packages are carefully packed to ensure your yarn arrives in perfect condition.", name),
			},
		}
	case domain.CategoryHooks:
		return []domain.FAQ{
			{
				Question: "What yarn weight works best with this crochet hook?",
				Answer:   fmt.Sprintf("The %s works well with yarn weights appropriate for its size. For detailed recommendations, please check the product specifications. Generally, larger hooks (5mm+) work well with worsted, aran, and bulky yarns, while smaller hooks are perfect for fingering, sport, and DK weights.", name),
			},
			{
				Question: "Is this hook suitable for beginners?",
				Answer:   fmt.Sprintf("Yes, the %s is excellent for beginners. Its ergonomic design reduces hand fatigue, and the smooth surface allows yarn to glide easily, making learning to crochet more enjoyable. The comfortable grip helps beginners maintain consistent tension as they develop their skills.", name),
			},
			{
				Question: fmt.Sprintf("How do I care for my %s?", name),
				Answer:   fmt.Sprintf("To maintain your %s in excellent condition, wipe it clean after use to remove any oils from your hands. Store it in a case to prevent scratches or damage. Avoid exposing it to extreme temperatures or harsh chemicals that could damage the material.", name),
			},
		}
	default:
		return []domain.FAQ{
			{
				Question: "How do I care for this product?",
				Answer:   fmt.Sprintf("Please refer to the care instructions on the product label. We recommend proper storage and handling to ensure the longevity of your %s.", name),
			},
			{
				Question: "Do you offer international shipping?",
				Answer:   "Yes, we ship to most countries worldwide. Shipping rates and delivery times vary based on location. Please check our shipping policy for details.",
			},
			{
				Question: "Can I return this product if I'm not satisfied?",
				Answer:   "Yes, we have a 30-day return policy. If you're not completely satisfied with your purchase, please contact our customer service team for assistance with returns or exchanges.",
			},
		}
	}
}
