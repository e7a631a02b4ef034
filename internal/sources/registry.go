package sources

import "fjacquet/bill-import/internal/categorizer"

// registry holds every known descriptor. Order is the display order.
var registry = []Descriptor{
	{
		ID:            Alipay,
		Name:          "支付宝",
		Icon:          "alipay",
		Color:         "#1677FF",
		Locale:        "zh",
		CaseSensitive: true,
		HeaderGroups:  [][]string{{"交易时间"}, {"金额"}},
		FieldKeywords: map[Field][]string{
			FieldDate:         {"交易时间", "付款时间"},
			FieldAmount:       {"金额"},
			FieldDirection:    {"收/支"},
			FieldCategory:     {"交易分类"},
			FieldNote:         {"商品说明", "商品名称"},
			FieldCounterparty: {"交易对方"},
			FieldStatus:       {"交易状态"},
		},
		FieldDefaults: map[Field]int{
			FieldDate:         0,
			FieldCategory:     1,
			FieldCounterparty: 2,
			FieldNote:         4,
			FieldDirection:    5,
			FieldAmount:       6,
			FieldStatus:       8,
		},
		CategoryTable: []categorizer.Rule{
			{Match: "餐饮", Canonical: categorizer.CategoryDining},
			{Match: "美食", Canonical: categorizer.CategoryDining},
			{Match: "交通", Canonical: categorizer.CategoryTransport},
			{Match: "出行", Canonical: categorizer.CategoryTransport},
			{Match: "服饰", Canonical: categorizer.CategoryShopping},
			{Match: "日用", Canonical: categorizer.CategoryShopping},
			{Match: "百货", Canonical: categorizer.CategoryShopping},
			{Match: "数码", Canonical: categorizer.CategoryShopping},
			{Match: "娱乐", Canonical: categorizer.CategoryEntertainment},
			{Match: "休闲", Canonical: categorizer.CategoryEntertainment},
			{Match: "医疗", Canonical: categorizer.CategoryMedical},
			{Match: "健康", Canonical: categorizer.CategoryMedical},
			{Match: "教育", Canonical: categorizer.CategoryEducation},
			{Match: "培训", Canonical: categorizer.CategoryEducation},
			{Match: "住房", Canonical: categorizer.CategoryHousing},
			{Match: "物业", Canonical: categorizer.CategoryHousing},
			{Match: "红包", Canonical: categorizer.CategoryGift},
			{Match: "转账", Canonical: categorizer.CategoryGift},
			{Match: "工资", Canonical: categorizer.CategorySalary},
			{Match: "理财", Canonical: categorizer.CategoryInvestment},
			{Match: "投资", Canonical: categorizer.CategoryInvestment},
		},
		StatusExcludes:   []string{"交易关闭", "退款成功", "已关闭"},
		TransferKeywords: []string{"不计收支"},
		IncomeKeywords:   []string{"收入"},
	},
	{
		ID:            WeChatPay,
		Name:          "微信支付",
		Icon:          "wechat",
		Color:         "#07C160",
		Locale:        "zh",
		CaseSensitive: true,
		HeaderGroups:  [][]string{{"交易时间"}, {"金额"}},
		FieldKeywords: map[Field][]string{
			FieldDate:         {"交易时间"},
			FieldAmount:       {"金额"},
			FieldDirection:    {"收/支"},
			FieldCategory:     {"交易类型"},
			FieldNote:         {"商品"},
			FieldCounterparty: {"交易对方"},
			FieldStatus:       {"当前状态"},
		},
		FieldDefaults: map[Field]int{
			FieldDate:         0,
			FieldCategory:     1,
			FieldCounterparty: 2,
			FieldNote:         3,
			FieldDirection:    4,
			FieldAmount:       5,
			FieldStatus:       7,
		},
		CategoryTable: []categorizer.Rule{
			{Match: "红包", Canonical: categorizer.CategoryGift},
			{Match: "转账", Canonical: categorizer.CategoryGift},
			{Match: "群收款", Canonical: categorizer.CategoryGift},
			{Match: "商户消费", Canonical: categorizer.CategoryShopping},
			{Match: "扫二维码付款", Canonical: categorizer.CategoryShopping},
			{Match: "充值", Canonical: categorizer.CategoryInvestment},
			{Match: "退款", Canonical: categorizer.CategoryShopping},
		},
		StatusExcludes:   []string{"已全额退款", "对方已退还", "已退款", "还款失败"},
		TransferKeywords: []string{"/"},
		IncomeKeywords:   []string{"收入"},
	},
	{
		ID:            Qianji,
		Name:          "钱迹",
		Icon:          "qianji",
		Color:         "#FF9500",
		Locale:        "zh",
		CaseSensitive: true,
		HeaderGroups:  [][]string{{"时间", "日期"}, {"金额"}},
		FieldKeywords: map[Field][]string{
			FieldDate:      {"时间", "日期"},
			FieldAmount:    {"金额"},
			FieldDirection: {"类型"},
			FieldCategory:  {"分类"},
			FieldNote:      {"备注"},
		},
		FieldDefaults: map[Field]int{
			FieldDate:      0,
			FieldCategory:  1,
			FieldDirection: 2,
			FieldAmount:    3,
			FieldNote:      4,
		},
		CategoryPassthrough: true,
		TransferKeywords:    []string{"转账"},
		IncomeKeywords:      []string{"收入"},
		SignBased:           true,
	},
	{
		ID:            Suishouji,
		Name:          "随手记",
		Icon:          "suishouji",
		Color:         "#E64340",
		Locale:        "zh",
		CaseSensitive: true,
		HeaderGroups:  [][]string{{"日期"}, {"金额"}},
		FieldKeywords: map[Field][]string{
			FieldDate:         {"日期"},
			FieldAmount:       {"金额"},
			FieldDirection:    {"交易类型"},
			FieldCategory:     {"子分类", "分类"},
			FieldNote:         {"备注"},
			FieldCounterparty: {"商家"},
		},
		FieldDefaults: map[Field]int{
			FieldDirection:    0,
			FieldDate:         1,
			FieldCategory:     3,
			FieldAmount:       5,
			FieldCounterparty: 6,
			FieldNote:         7,
		},
		CategoryPassthrough: true,
		TransferKeywords:    []string{"转账"},
		IncomeKeywords:      []string{"收入"},
	},
	{
		ID:            Spreadsheet,
		Name:          "Spreadsheet Export",
		Icon:          "table",
		Color:         "#34C759",
		Locale:        "en",
		CaseSensitive: false,
		HeaderGroups:  [][]string{{"date"}, {"amount"}},
		FieldKeywords: map[Field][]string{
			FieldDate:     {"date"},
			FieldAmount:   {"amount"},
			FieldCategory: {"category"},
			FieldNote:     {"note", "memo", "description"},
			FieldStatus:   {"status", "state"},
		},
		FieldDefaults: map[Field]int{
			FieldDate:     0,
			FieldNote:     1,
			FieldCategory: 2,
			FieldAmount:   3,
		},
		CategoryPassthrough: true,
		StatusExcludes:      []string{"refunded", "cancelled", "canceled", "failed"},
		SignBased:           true,
	},
	{
		ID:            Generic,
		Name:          "Generic CSV",
		Icon:          "doc",
		Color:         "#8E8E93",
		Locale:        "any",
		CaseSensitive: false,
		HeaderGroups: [][]string{
			{"date", "日期", "时间", "time"},
			{"amount", "金额", "money"},
		},
		FieldKeywords: map[Field][]string{
			FieldDate:         {"日期", "时间", "date", "time"},
			FieldAmount:       {"金额", "amount", "money"},
			FieldDirection:    {"收/支", "类型", "direction", "type"},
			FieldCategory:     {"分类", "类别", "category"},
			FieldNote:         {"备注", "note", "memo", "description", "说明"},
			FieldCounterparty: {"交易对方", "对方", "counterparty", "payee", "merchant"},
			FieldStatus:       {"状态", "status", "state"},
		},
		FieldDefaults: map[Field]int{
			FieldDate:     0,
			FieldAmount:   1,
			FieldCategory: 2,
			FieldNote:     3,
		},
		CategoryPassthrough: true,
		StatusExcludes:      []string{"退款", "交易关闭", "refunded", "cancelled", "canceled"},
		TransferKeywords:    []string{"转账", "transfer"},
		IncomeKeywords:      []string{"收入", "income", "credit", "入账"},
		SignBased:           true,
	},
}
