package shopping

import (
	"fmt"
	"strings"

	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/pkg/common"
)

const (
	parseSystemPrompt = "Sen bir alışveriş listesi asistanısın. Verilen malzeme satırlarını alışveriş öğelerine ayır. " +
		"Her satır için malzeme adını, sayısal miktarını ve birimini (gr, kg, ml, litre, adet, su bardağı vb.) çıkar. " +
		"Miktar veya birim yoksa bu alanları boş bırak. Sadece JSON formatında döndür."

	mergeSystemPrompt = "Sen bir alışveriş listesi asistanısın. Birden fazla tariften gelen alışveriş öğelerini tek bir " +
		"listede birleştir. Aynı malzemeleri tek satırda topla, gerekiyorsa birimleri ortak birime çevirerek miktarları " +
		"topla. Malzeme adlarını küçük harfle yaz. Sadece JSON formatında döndür."

	itemsFormat = `JSON formatında şu yapıda döndür: {"items": [{"name": "...", "quantity": 0, "unit": "..."}]}`

	shoppingTemperature = 0.2
	shoppingMaxTokens   = 1500
)

func parsePrompt(lines []string) *provider.Request {
	user := fmt.Sprintf("Şu malzemeleri ayrıştır:\n\n%s\n\n%s", common.FormatIngredients(lines), itemsFormat)
	return shoppingRequest(parseSystemPrompt, user)
}

func mergePrompt(items []FlattenedItem) *provider.Request {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item.Name)
		if item.Quantity != nil {
			sb.WriteString(" | ")
			sb.WriteString(common.FormatNumber(*item.Quantity))
		}
		if item.Unit != "" {
			sb.WriteString(" | ")
			sb.WriteString(item.Unit)
		}
		if item.RecipeTitle != "" {
			sb.WriteString(" (")
			sb.WriteString(item.RecipeTitle)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}

	user := fmt.Sprintf("Şu alışveriş öğelerini birleştir (ad | miktar | birim (tarif)):\n\n%s\n%s", sb.String(), itemsFormat)
	return shoppingRequest(mergeSystemPrompt, user)
}

func shoppingRequest(system, user string) *provider.Request {
	return &provider.Request{
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: system},
			{Role: provider.RoleUser, Content: user},
		},
		Temperature: shoppingTemperature,
		MaxTokens:   shoppingMaxTokens,
	}
}
