package templates

// Default returns the built-in fallback template.
func Default() string {
	return defaultTemplate
}

// defaultTemplate is used when no template file exists in any configured
// directory, so a fresh checkout can generate descriptions without a data
// folder.
const defaultTemplate = `<!-- META_DESCRIPTION: {{META_DESCRIPTION}} -->
<!-- KEYWORDS: {{KEYWORDS}} -->

<div class="product-description">
  <nav class="breadcrumbs">
    <a href="https://hollywool.eu/">Home</a> &raquo;
    <a href="https://hollywool.eu/product-category/{{category}}/">{{category_name}}</a> &raquo;
    <span>{{PRODUCT_NAME}}</span>
  </nav>

  <h2>{{PRODUCT_NAME}}</h2>

  <p>Discover {{PRODUCT_NAME}}, a carefully selected addition to our {{category_name}} collection.
  Whether you are planning your next big project or simply stocking up on quality supplies,
  {{PRODUCT_NAME}} delivers the reliability and feel that crafters come back for.</p>

  <h3>📋 The Nitty-Gritty Details (Specifications)</h3>
  {{SPECIFICATIONS}}

  <h3>🧶 Perfect For</h3>
  {{PERFECT_FOR}}

  <h3>Why Crafters Love It</h3>
  <p>{{PRODUCT_NAME}} has earned its place in project bags across Europe. Combine it with
  the right tools from our store and you have everything needed for a finished piece you
  will be proud of.</p>

  {{FAQS}}

  <h3>Related Products</h3>
  {{INTERNAL_LINKS}}

  <h3>Order Your {{PRODUCT_NAME}} Today</h3>
  {{CALL_TO_ACTION}}

  <div class="seo-keywords" style="display:none">
    {{SEO_KEYWORDS}}
  </div>
</div>
`
