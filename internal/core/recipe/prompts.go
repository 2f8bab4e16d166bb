package recipe

import (
	"fmt"
	"strings"

	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/pkg/common"
)

const (
	veganSystemPrompt = "Sen bir vegan tarif uzmanısın. Verilen tarifi vegan versiyonuna çevir. " +
		"Hayvansal ürünleri uygun bitkisel alternatiflerle değiştir. Malzemeleri ve adımları güncelle. " +
		"Sadece JSON formatında döndür."

	dietSystemPrompt = "Sen bir diyetisyen ve sağlıklı yemek uzmanısın. Verilen tarifi daha sağlıklı ve " +
		"düşük kalorili versiyonuna çevir. Şeker, yağ ve kalori miktarlarını azalt, sağlıklı alternatifler öner. " +
		"Malzemeleri ve adımları güncelle. Sadece JSON formatında döndür."

	portionSystemPrompt = "Sen deneyimli bir aşçısın. Verilen tarifin malzeme miktarlarını mevcut porsiyondan " +
		"hedef porsiyona göre ölçekle. ÖNEMLİ: Bazı malzemeler porsiyon sayısı artsa bile sabit kalmalıdır " +
		"veya çok az artmalıdır:\n" +
		"- Tuz, karabiber, kırmızıbiber gibi baharatlar: Genellikle aynı kalır veya çok az artar\n" +
		"- Karbonat, kabartma tozu gibi mayalayıcılar: Orantılı artmaz, aynı kalır\n" +
		"- Vanilya, limon suyu gibi lezzet vericiler: Aynı kalır veya çok az artar\n" +
		"- Pişirme süreleri: Değişmez\n" +
		"Ana malzemeleri (un, et, sebze, sıvılar vb.) orantılı olarak ölçekle. " +
		"Baharatları ve lezzet vericileri akıllıca koru. Sadece JSON formatında döndür."

	questionSystemPrompt = "Sen deneyimli bir Türk şef ve beslenme uzmanısın. Kullanıcı sadece belirli bir " +
		"tarif hakkında sorular soracak. YALNIZCA verilen tarif bilgilerini (başlık, açıklama, malzemeler, " +
		"adımlar, porsiyon, ana/alt tür) kullan. Tahmin yürütmen gerektiğinde bunu açıkça belirt, uydurma " +
		"veri ekleme. Cevaplarını kısa, net ve konuşma dilinde, TÜRKÇE olarak ver."
)

// Generation parameters per operation.
const (
	substituteTemperature = 0.7
	substituteMaxTokens   = 2000
	portionTemperature    = 0.3
	portionMaxTokens      = 1500
	questionTemperature   = 0.4
	questionMaxTokens     = 800
)

func substitutePrompt(p Profile, r common.Recipe) *provider.Request {
	system := veganSystemPrompt
	kind := "vegan"
	if p.Name == DietProfile.Name {
		system = dietSystemPrompt
		kind = "diyet"
	}

	user := fmt.Sprintf("Şu tarifi %s versiyonuna çevir:\n\nBaşlık: %s\n\nMalzemeler:\n%s\n\nAdımlar:\n%s\n\n"+
		`JSON formatında şu yapıda döndür: {"title": "...", "ingredients": [...], "steps": [...]}`,
		kind, r.Title, common.FormatIngredients(r.Ingredients), strings.Join(r.Steps, "\n"))

	return &provider.Request{
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: system},
			{Role: provider.RoleUser, Content: user},
		},
		Temperature: substituteTemperature,
		MaxTokens:   substituteMaxTokens,
	}
}

func portionPrompt(r common.Recipe, target, current float64) *provider.Request {
	user := fmt.Sprintf("Şu tarif şu anda %s porsiyon için. Bunu %s porsiyon için ölçekle:\n\n"+
		"Başlık: %s\n\nMalzemeler:\n%s\n\n"+
		"ÖNEMLİ: Baharatları (tuz, karabiber, vb.), mayalayıcıları ve lezzet vericileri sabit tut veya çok az artır. "+
		"Ana malzemeleri orantılı olarak ölçekle.\n\n"+
		`JSON formatında şu yapıda döndür: {"title": "...", "ingredients": [...]}`,
		common.FormatNumber(current), common.FormatNumber(target), r.Title, common.FormatIngredients(r.Ingredients))

	return &provider.Request{
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: portionSystemPrompt},
			{Role: provider.RoleUser, Content: user},
		},
		Temperature: portionTemperature,
		MaxTokens:   portionMaxTokens,
	}
}

// questionPrompt mentions imageURL in the text and attaches image, which is
// either the same URL or an inline copy of it.
func questionPrompt(r common.Recipe, question, imageURL, image string) *provider.Request {
	portions := ""
	if r.Portions > 0 {
		portions = common.FormatNumber(r.Portions)
	}
	photo := "(fotoğraf yok)"
	if imageURL != "" {
		photo = imageURL
	}

	user := fmt.Sprintf("Tarif bilgileri:\nBaşlık: %s\nAna tür: %s\nAlt tür: %s\nPorsiyon: %s\nAçıklama: %s\n\n"+
		"Malzemeler:\n%s\n\nAdımlar:\n%s\n\nKullanıcının sorusu:\n%s\n\n"+
		"Lütfen sadece bu tarif bağlamında cevap ver.\n\n"+
		"Eğer bir fotoğraf bağlantısı verilmişse, bu fotoğraf tarifle ilgili olabilir. "+
		"Fotoğrafı yorumlarken yine sadece tarifin bağlamında kalmaya çalış:\n%s\n",
		r.Title, r.MainType, r.SubType, portions, r.Description,
		common.FormatBulleted(r.Ingredients), common.FormatNumbered(r.Steps), question, photo)

	return &provider.Request{
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: questionSystemPrompt},
			{Role: provider.RoleUser, Content: user, ImageURL: image},
		},
		Temperature: questionTemperature,
		MaxTokens:   questionMaxTokens,
	}
}
