package content

// The landing page is static marketing copy; the frontend renders
// whatever this package serves, so edits here need no client release.

// Variant is the closed set of presentation styles a content card can
// carry. The frontend resolves each name through its own icon/color
// table; unknown names fall back to "primary".
type Variant string

const (
	VariantPrimary Variant = "primary"
	VariantBlue    Variant = "blue"
	VariantAmber   Variant = "amber"
	VariantGreen   Variant = "green"
)

// Style is the resolved {color, icon} pair for a variant.
type Style struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// styles is the single lookup table for variant resolution.
var styles = map[Variant]Style{
	VariantPrimary: {Color: "primary", Icon: "trending-up"},
	VariantBlue:    {Color: "blue", Icon: "inbox"},
	VariantAmber:   {Color: "amber", Icon: "alert-circle"},
	VariantGreen:   {Color: "green", Icon: "check-circle-2"},
}

// Resolve maps a variant to its style, defaulting to primary.
func Resolve(v Variant) Style {
	if s, ok := styles[v]; ok {
		return s
	}
	return styles[VariantPrimary]
}

type Feature struct {
	Variant     Variant `json:"variant"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

type Step struct {
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type NavLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type CompanyInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Hero struct {
	Badge    string `json:"badge"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// Landing is the full landing page payload.
type Landing struct {
	Company     CompanyInfo `json:"company"`
	Navigation  []NavLink   `json:"navigation"`
	Hero        Hero        `json:"hero"`
	About       []Feature   `json:"about"`
	Eligibility []string    `json:"eligibility"`
	Process     []Step      `json:"process"`
}

// Default returns the landing content of the initiative.
func Default() Landing {
	return Landing{
		Company: CompanyInfo{
			Name:  "منصة الدعم الذكي",
			Email: "grants@charity-example.org",
			Phone: "+966 11 000 0000",
		},
		Navigation: []NavLink{
			{Name: "عن المبادرة", Href: "#about"},
			{Name: "شروط الأهلية", Href: "#eligibility"},
			{Name: "خطوات التقديم", Href: "#process"},
		},
		Hero: Hero{
			Badge:    "باب التقديم مفتوح الآن",
			Title:    "معاً نصنع الأثر.. تمويل المشاريع الخيرية",
			Subtitle: "ندعو الجمعيات والمؤسسات الخيرية لتقديم مقترحات مشاريع نوعية ومؤهلة للحصول على دعم المانحين، لنساهم سوياً في تنمية المجتمع.",
			CTA:      "تقديم مقترح مشروع",
		},
		About: []Feature{
			{
				Variant:     VariantGreen,
				Title:       "تركيز على الأثر",
				Description: "نبحث عن المشاريع التي تحقق أثراً مستداماً وواقعياً في حياة المستفيدين والمجتمع.",
			},
			{
				Variant:     VariantBlue,
				Title:       "عدالة وشفافية",
				Description: "تخضع جميع المقترحات لعملية تقييم دقيقة ومحايدة لضمان وصول الدعم للمشاريع الأكثر استحقاقاً.",
			},
			{
				Variant:     VariantPrimary,
				Title:       "شراكة مجتمعية",
				Description: "نؤمن بأن العمل الخيري جهد تكاملي، ونسعى لتمكين الجهات الفاعلة في القطاع غير الربحي.",
			},
		},
		Eligibility: []string{
			"أن تكون الجهة مسجلة رسمياً ولديها ترخيص ساري المفعول.",
			"وجود حساب بنكي رسمي باسم الجهة.",
			"تقديم مقترح فني ومالي واضح للمشروع.",
			"القدرة على توفير تقارير دورية عن سير العمل وصرف الميزانية.",
			"أن يخدم المشروع فئة مجتمعية محددة واحتياجاً قائماً.",
			"وجود هيكل إداري قادر على تنفيذ المشروع بكفاءة.",
		},
		Process: []Step{
			{Number: "01", Title: "تجهيز المستندات", Description: "قم بتحضير ملف المشروع والميزانية وكافة الأوراق القانونية المطلوبة بصيغة PDF."},
			{Number: "02", Title: "تعبئة النموذج", Description: "انتقل إلى الرابط المخصص وقم بتعبئة البيانات الأساسية عن الجهة والمشروع."},
			{Number: "03", Title: "إرفاق الملفات", Description: "ارفع الملفات المطلوبة في الخانات المخصصة داخل النموذج وتأكد من اكتمالها."},
			{Number: "04", Title: "إرسال وانتظار الرد", Description: "بعد الإرسال، سيتم مراجعة الطلب وسيصلك إشعار عبر البريد الإلكتروني بحالة الطلب."},
		},
	}
}
