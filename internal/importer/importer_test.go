package importer

import (
	"testing"

	"fjacquet/bill-import/internal/models"
	"fjacquet/bill-import/internal/parsererror"
	"fjacquet/bill-import/internal/sources"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alipaySample = `支付宝交易记录明细查询
起始日期:[2024-01-01]
交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态
2024-01-15 12:30:00,餐饮美食,某某餐厅,,午餐,支出,¥88.50,余额,交易成功
`

func TestParseAlipayExpenseRow(t *testing.T) {
	res, err := New(Options{}).Parse(alipaySample, sources.Alipay)
	require.NoError(t, err)

	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 0, res.FailedCount)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.True(t, decimal.NewFromFloat(88.50).Equal(rec.Amount))
	assert.Equal(t, models.Expense, rec.Direction)
	assert.Equal(t, "餐饮", rec.CategoryLabel)
	assert.Equal(t, "某某餐厅 午餐", rec.Note)
	assert.True(t, rec.Selected)
	assert.Equal(t, 2024, rec.Date.Year())
	require.Len(t, rec.RawFields, 9)
	assert.Equal(t, "交易时间", rec.RawFields[0].Header)
	assert.Equal(t, "2024-01-15 12:30:00", rec.RawFields[0].Value)
}

func TestParseAlipayIncomeRow(t *testing.T) {
	content := "交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态\n" +
		"2024-02-01 09:00:00,转账红包,朋友,,红包,收入,¥20.00,余额,交易成功\n"

	res, err := New(Options{}).Parse(content, sources.Alipay)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, models.Income, res.Records[0].Direction)
	assert.Equal(t, "人情", res.Records[0].CategoryLabel)
}

func TestParseUnparseableDate(t *testing.T) {
	content := "交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态\n" +
		"not-a-date,餐饮美食,店,,餐,支出,¥10.00,余额,交易成功\n"

	res, err := New(Options{}).Parse(content, sources.Alipay)
	require.NoError(t, err)

	assert.Equal(t, 0, res.SuccessCount)
	assert.Equal(t, 1, res.FailedCount)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "cannot parse date: not-a-date")
}

func TestParseRejectsZeroAndBadAmounts(t *testing.T) {
	content := "交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态\n" +
		"2024-01-15 10:00:00,餐饮美食,店,,餐,支出,0.00,余额,交易成功\n" +
		"2024-01-15 11:00:00,餐饮美食,店,,餐,支出,garbage,余额,交易成功\n"

	res, err := New(Options{}).Parse(content, sources.Alipay)
	require.NoError(t, err)

	assert.Equal(t, 0, res.SuccessCount)
	assert.Equal(t, 2, res.FailedCount)
	assert.Contains(t, res.Errors[0], "cannot parse amount: 0.00")
	assert.Contains(t, res.Errors[1], "cannot parse amount: garbage")
}

func TestParseGenericCSV(t *testing.T) {
	content := "Date,Amount,Category,Note\n2024-03-01,-42.00,Food,Lunch\n"

	res, err := New(Options{}).Parse(content, sources.Generic)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	rec := res.Records[0]
	assert.Equal(t, models.Expense, rec.Direction, "negative amount means expense")
	assert.True(t, decimal.NewFromFloat(42).Equal(rec.Amount))
	assert.Equal(t, "Food", rec.CategoryLabel)
	assert.Equal(t, "Lunch", rec.Note)
}

func TestParseGenericPositiveAmountIsIncome(t *testing.T) {
	content := "Date,Amount,Category,Note\n2024-03-01,42.00,Salary,March\n"

	res, err := New(Options{}).Parse(content, sources.Generic)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, models.Income, res.Records[0].Direction)
}

func TestStatusFilteredRowsAreSilentlyDropped(t *testing.T) {
	content := "交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态\n" +
		"2024-01-15 10:00:00,餐饮美食,店,,餐,支出,¥10.00,余额,交易关闭\n" +
		"2024-01-15 11:00:00,餐饮美食,店,,餐,支出,¥20.00,余额,退款成功\n" +
		"2024-01-15 12:00:00,餐饮美食,店,,餐,支出,¥30.00,余额,交易成功\n"

	res, err := New(Options{}).Parse(content, sources.Alipay)
	require.NoError(t, err)

	assert.Equal(t, 1, res.SuccessCount, "filtered rows do not count as success")
	assert.Equal(t, 0, res.FailedCount, "filtered rows do not count as failure")
	require.Len(t, res.Records, 1)
	assert.True(t, decimal.NewFromFloat(30).Equal(res.Records[0].Amount))
}

func TestWeChatTransferRowsAreDropped(t *testing.T) {
	content := "交易时间,交易类型,交易对方,商品,收/支,金额(元),支付方式,当前状态\n" +
		"2024-01-10 08:00:00,转账,朋友,/,/,¥100.00,零钱,支付成功\n" +
		"2024-01-10 09:00:00,商户消费,便利店,矿泉水,支出,¥3.50,零钱,支付成功\n"

	res, err := New(Options{}).Parse(content, sources.WeChatPay)
	require.NoError(t, err)

	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 0, res.FailedCount)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "购物", res.Records[0].CategoryLabel)
}

func TestQianjiTypeColumn(t *testing.T) {
	content := "时间,分类,类型,金额,备注\n" +
		"2024-04-01 12:00:00,工资,收入,5000.00,四月工资\n" +
		"2024-04-02 12:00:00,日常,支出,15.00,地铁\n" +
		"2024-04-03 12:00:00,互转,转账,200.00,卡到卡\n"

	res, err := New(Options{}).Parse(content, sources.Qianji)
	require.NoError(t, err)

	assert.Equal(t, 2, res.SuccessCount)
	require.Len(t, res.Records, 2)
	assert.Equal(t, models.Income, res.Records[0].Direction)
	assert.Equal(t, "工资", res.Records[0].CategoryLabel, "qianji passes categories through")
	assert.Equal(t, models.Expense, res.Records[1].Direction)
}

func TestSuishoujiSubcategoryAndTransfers(t *testing.T) {
	content := "交易类型,日期,分类,子分类,账户,金额,商家,备注\n" +
		"支出,2024-05-01,食品酒水,早餐,现金,12.00,早点铺,豆浆油条\n" +
		"转账,2024-05-02,,,银行卡,500.00,,转入储蓄\n"

	res, err := New(Options{}).Parse(content, sources.Suishouji)
	require.NoError(t, err)

	assert.Equal(t, 1, res.SuccessCount)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "早餐", res.Records[0].CategoryLabel, "subcategory column wins for suishouji")
	assert.Equal(t, "早点铺 豆浆油条", res.Records[0].Note)
}

func TestSpreadsheetSignsAndStatus(t *testing.T) {
	content := "Date,Description,Category,Amount,Status\n" +
		"2024-06-01,Groceries,Food,-55.20,posted\n" +
		"2024-06-02,Refund for order,Shopping,12.00,refunded\n" +
		"2024-06-03,Paycheck,Salary,2500.00,posted\n"

	res, err := New(Options{}).Parse(content, sources.Spreadsheet)
	require.NoError(t, err)

	assert.Equal(t, 2, res.SuccessCount)
	require.Len(t, res.Records, 2)
	assert.Equal(t, models.Expense, res.Records[0].Direction)
	assert.Equal(t, models.Income, res.Records[1].Direction)
}

func TestAggregateInvariant(t *testing.T) {
	// 1 good row, 1 bad date, 1 bad amount, 1 status-dropped, 1 transfer.
	content := "交易时间,交易分类,交易对方,对方账号,商品说明,收/支,金额,收/付款方式,交易状态\n" +
		"2024-01-15 10:00:00,餐饮美食,店,,餐,支出,¥10.00,余额,交易成功\n" +
		"bad-date,餐饮美食,店,,餐,支出,¥10.00,余额,交易成功\n" +
		"2024-01-15 11:00:00,餐饮美食,店,,餐,支出,zero,余额,交易成功\n" +
		"2024-01-15 12:00:00,餐饮美食,店,,餐,支出,¥10.00,余额,交易关闭\n" +
		"2024-01-15 13:00:00,转账红包,友,,红包,不计收支,¥10.00,余额,交易成功\n"

	res, err := New(Options{}).Parse(content, sources.Alipay)
	require.NoError(t, err)

	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 2, res.FailedCount)
	assert.Equal(t, 3, res.RowsExamined(), "silently dropped rows are outside the invariant")
	assert.Equal(t, 0, res.DuplicateCount, "no component computes duplicates yet")
}

func TestHeaderNotFoundFallsBackWithWarning(t *testing.T) {
	content := "foo,bar\n2024-01-01,10.00\n"

	res, err := New(Options{}).Parse(content, sources.Generic)
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "header row not found")
	// The first line is treated as the header; the generic defaults still
	// map the data row correctly.
	assert.Equal(t, 1, res.SuccessCount)
}

func TestParseFatalOnEmptyFile(t *testing.T) {
	_, err := New(Options{}).Parse("", sources.Alipay)
	assert.Error(t, err)
	assert.IsType(t, &parsererror.ValidationError{}, err)

	_, err = New(Options{}).Parse("   \n \n", sources.Alipay)
	assert.Error(t, err)
}

func TestParseFatalOnInvalidUTF8(t *testing.T) {
	_, err := New(Options{}).Parse("\xff\xfe\xfd", sources.Alipay)
	assert.Error(t, err)
	assert.IsType(t, &parsererror.ValidationError{}, err)
}

func TestUnknownSourceUsesGenericFallback(t *testing.T) {
	content := "Date,Amount,Category,Note\n2024-03-01,-42.00,Food,Lunch\n"

	res, err := New(Options{}).Parse(content, sources.Source("some-new-app"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
}

func TestParseIsIdempotent(t *testing.T) {
	e := New(Options{})

	first, err := e.Parse(alipaySample, sources.Alipay)
	require.NoError(t, err)
	second, err := e.Parse(alipaySample, sources.Alipay)
	require.NoError(t, err)

	assert.Equal(t, first.SuccessCount, second.SuccessCount)
	assert.Equal(t, first.FailedCount, second.FailedCount)
	assert.Equal(t, first.Errors, second.Errors)
	assert.Equal(t, first.Warnings, second.Warnings)
	require.Equal(t, len(first.Records), len(second.Records))
	for i := range first.Records {
		a, b := first.Records[i], second.Records[i]
		assert.True(t, a.Amount.Equal(b.Amount))
		assert.Equal(t, a.Direction, b.Direction)
		assert.Equal(t, a.CategoryLabel, b.CategoryLabel)
		assert.Equal(t, a.Note, b.Note)
		assert.Equal(t, a.Date, b.Date)
		assert.Equal(t, a.RawFields, b.RawFields)
	}
}
