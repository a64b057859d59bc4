package i18n

// messages holds display text per locale. English text lives on the domain
// and question definitions themselves, so only translations are listed here.
var messages = map[string]map[string]string{
	LocaleTR: {
		"goal.video": "Video",
		"goal.image": "Görsel",
		"goal.game":  "Oyun",
		"goal.tool":  "Araç",

		"mood.noir":              "Noir",
		"mood.noir.desc":         "Gölgeli, kasvetli, yüksek kontrast",
		"mood.cyberpunk":         "Siberpunk",
		"mood.cyberpunk.desc":    "Neon, teknoloji, yağmurlu, fütüristik",
		"mood.minimalist":        "Minimalist",
		"mood.minimalist.desc":   "Sade, ferah, amaca yönelik",
		"mood.ethereal":          "Eterik",
		"mood.ethereal.desc":     "Işıklı, hafif, rüya gibi",
		"mood.brutalist":         "Brütalist",
		"mood.brutalist.desc":    "Ham, ağır, beton, cesur",
		"mood.vintage":           "Vintage",
		"mood.vintage.desc":      "Solgun, nostaljik, sıcak",
		"mood.biophilic":         "Biyofilik",
		"mood.biophilic.desc":    "Doğal, organik, yeşil",
		"mood.high-fashion":      "Yüksek Moda",
		"mood.high-fashion.desc": "Parlak, keskin, avangart",

		"intent.commercial":       "Ticari",
		"intent.commercial.desc":  "Bir ürün ya da yaşam tarzı satmak",
		"intent.artistic":         "Sanatsal",
		"intent.artistic.desc":    "Kişisel ifade ve konsept",
		"intent.educational":      "Eğitici",
		"intent.educational.desc": "Bilginin net aktarımı",
		"intent.cinematic":        "Sinematik",
		"intent.cinematic.desc":   "Hikâye anlatımı ve atmosfer",

		"cat.video.ad":           "Reklam",
		"cat.video.trailer":      "Film Fragmanı",
		"cat.video.social":       "Sosyal Medya Videosu",
		"cat.video.documentary":  "Belgesel",
		"cat.image.portrait":     "Portre",
		"cat.image.product":      "Ürün Fotoğrafçılığı",
		"cat.image.architecture": "Mimari",
		"cat.image.fashion":      "Moda",
		"cat.game.rpg":           "Açık Dünya RYO",
		"cat.game.puzzle":        "Soyut Bulmaca",
		"cat.game.horror":        "Psikolojik Korku",
		"cat.game.sim":           "Huzurlu Simülasyon",
		"cat.tool.productivity":  "Verimlilik Uygulaması",
		"cat.tool.creative":      "Yaratıcı Araç",
		"cat.tool.education":     "Öğrenme Platformu",
		"cat.tool.fintech":       "Finansal Yönetim",

		"q.pacing":                 "Tempo nasıl hissettirmeli?",
		"q.pacing.fast":            "Hızlı ve Enerjik",
		"q.pacing.fast.desc":       "Hızlı kesmeler, yoğun hareket",
		"q.pacing.slow":            "Yavaş ve Özenli",
		"q.pacing.slow.desc":       "Uzun çekimler, sakin akış",
		"q.pacing.erratic":         "Düzensiz ve Dinamik",
		"q.pacing.erratic.desc":    "Öngörülemeyen geçişler",
		"q.fog_density":            "Ortam pusu ne düzeyde olsun?",
		"q.fog_density.none":       "Berrak",
		"q.fog_density.light":      "İnce Sis",
		"q.fog_density.heavy":      "Yoğun Atmosfer",
		"q.material":               "Baskın malzeme dokusu?",
		"q.material.matte":         "Mat Plastik",
		"q.material.brushed":       "Fırçalanmış Alüminyum",
		"q.material.glass":         "Kristal Cam",
		"q.material.ceramic":       "Parlak Seramik",
		"q.lighting_setup":         "Stüdyo ışık düzeni?",
		"q.lighting_setup.rim":     "Kenar Işığı",
		"q.lighting_setup.softbox": "Üst Softbox",
		"q.lighting_setup.neon":    "Çift Neon Tüp",
		"q.lens":                   "Tercih edilen odak uzaklığı?",
		"q.lens.35mm":              "35mm Hikâye Anlatımı",
		"q.lens.85mm":              "85mm Klasik Portre",
		"q.lens.200mm":             "200mm Telefoto Sıkıştırma",
		"q.user_level":             "Hedef kullanıcı kim?",
		"q.user_level.pro":         "Sektör Profesyonelleri",
		"q.user_level.beginner":    "Tam Yeni Başlayanlar",
		"q.user_level.hobbyist":    "Hevesli Amatörler",
		"q.core_loop":              "Temel eylem nedir?",
		"q.core_loop.collect":      "Topla ve İnşa Et",
		"q.core_loop.combat":       "Taktiksel Dövüş",
		"q.core_loop.explore":      "Anlatı Keşfi",
		"q.core_loop.solve":        "Karmaşık Çıkarım",
		"q.subject":                "Ana konu ya da temel fikir nedir?",
		"q.subject.placeholder":    "örn. Çölde yalnız bir gezgin, Premium minimalist bir kahve makinesi...",
	},
	LocaleAR: {
		"goal.video": "فيديو",
		"goal.image": "صورة",
		"goal.game":  "لعبة",
		"goal.tool":  "أداة",

		"mood.noir":              "نوار",
		"mood.noir.desc":         "ظلال، مزاج قاتم، تباين عالٍ",
		"mood.cyberpunk":         "سايبربانك",
		"mood.cyberpunk.desc":    "نيون، تقنية، مطر، مستقبلي",
		"mood.minimalist":        "بسيط",
		"mood.minimalist.desc":   "نظيف، فسيح، هادف",
		"mood.ethereal":          "أثيري",
		"mood.ethereal.desc":     "مضيء، خفيف، حالم",
		"mood.brutalist":         "وحشي",
		"mood.brutalist.desc":    "خام، ثقيل، خرساني، جريء",
		"mood.vintage":           "عتيق",
		"mood.vintage.desc":      "باهت، حنين، دافئ",
		"mood.biophilic":         "محب للطبيعة",
		"mood.biophilic.desc":    "طبيعي، عضوي، أخضر",
		"mood.high-fashion":      "أزياء راقية",
		"mood.high-fashion.desc": "لامع، حاد، طليعي",

		"intent.commercial":       "تجاري",
		"intent.commercial.desc":  "بيع منتج أو أسلوب حياة",
		"intent.artistic":         "فني",
		"intent.artistic.desc":    "تعبير شخصي وفكرة",
		"intent.educational":      "تعليمي",
		"intent.educational.desc": "توصيل المعلومة بوضوح",
		"intent.cinematic":        "سينمائي",
		"intent.cinematic.desc":   "سرد القصص والأجواء",

		"cat.video.ad":           "إعلان",
		"cat.video.trailer":      "إعلان فيلم",
		"cat.video.social":       "مقطع لوسائل التواصل",
		"cat.video.documentary":  "وثائقي",
		"cat.image.portrait":     "بورتريه",
		"cat.image.product":      "تصوير المنتجات",
		"cat.image.architecture": "عمارة",
		"cat.image.fashion":      "أزياء",
		"cat.game.rpg":           "لعب أدوار بعالم مفتوح",
		"cat.game.puzzle":        "ألغاز تجريدية",
		"cat.game.horror":        "رعب نفسي",
		"cat.game.sim":           "محاكاة هادئة",
		"cat.tool.productivity":  "تطبيق إنتاجية",
		"cat.tool.creative":      "أداة إبداعية",
		"cat.tool.education":     "منصة تعلم",
		"cat.tool.fintech":       "إدارة مالية",

		"q.pacing":                 "كيف يجب أن يكون الإيقاع؟",
		"q.pacing.fast":            "سريع ومفعم بالطاقة",
		"q.pacing.fast.desc":       "قطعات سريعة وحركة عالية",
		"q.pacing.slow":            "بطيء ومتأنٍ",
		"q.pacing.slow.desc":       "لقطات مطوّلة وانسياب هادئ",
		"q.pacing.erratic":         "متقلب وديناميكي",
		"q.pacing.erratic.desc":    "انتقالات غير متوقعة",
		"q.fog_density":            "ما مستوى الضباب في البيئة؟",
		"q.fog_density.none":       "صافٍ",
		"q.fog_density.light":      "ضباب خفيف",
		"q.fog_density.heavy":      "أجواء كثيفة",
		"q.material":               "ما ملمس المادة الغالب؟",
		"q.material.matte":         "بلاستيك مطفي",
		"q.material.brushed":       "ألومنيوم مصقول",
		"q.material.glass":         "زجاج كريستالي",
		"q.material.ceramic":       "سيراميك لامع",
		"q.lighting_setup":         "إعداد إضاءة الاستوديو؟",
		"q.lighting_setup.rim":     "إضاءة حافية",
		"q.lighting_setup.softbox": "سوفت بوكس علوي",
		"q.lighting_setup.neon":    "أنبوبا نيون",
		"q.lens":                   "البعد البؤري المفضل للعدسة؟",
		"q.lens.35mm":              "35 مم للسرد",
		"q.lens.85mm":              "85 مم بورتريه كلاسيكي",
		"q.lens.200mm":             "200 مم ضغط تيليفوتو",
		"q.user_level":             "من هو المستخدم المستهدف؟",
		"q.user_level.pro":         "محترفو المجال",
		"q.user_level.beginner":    "مبتدئون تماماً",
		"q.user_level.hobbyist":    "هواة متحمسون",
		"q.core_loop":              "ما هو الفعل الأساسي؟",
		"q.core_loop.collect":      "اجمع وابنِ",
		"q.core_loop.combat":       "قتال تكتيكي",
		"q.core_loop.explore":      "استكشاف سردي",
		"q.core_loop.solve":        "استنتاج معقد",
		"q.subject":                "ما هو الموضوع الرئيسي أو الفكرة الأساسية؟",
		"q.subject.placeholder":    "مثال: رحالة وحيد في الصحراء، آلة قهوة فاخرة بتصميم بسيط...",
	},
}
