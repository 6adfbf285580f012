package templates

import "github.com/erp/docgen/internal/domain/document"

// Built-in template texts, one per document kind and locale. Thermal
// receipt templates are column-narrow; invoice and quote templates
// target A4. The QR image payload is embedded verbatim; it arrives
// from the compliance collaborator as a self-contained data URI.

const receiptEN = `{{organizationName}}
{{organizationAddress}}
{{#organizationPhone}}Tel: {{organizationPhone}}
{{/organizationPhone}}{{#organizationTaxNumber}}VAT No: {{organizationTaxNumber}}
{{/organizationTaxNumber}}--------------------------------
Receipt {{documentNumber}}
Date: {{issueDate}}
--------------------------------
{{#each items}}{{name}}
  {{quantity}} x {{unitPrice}}   {{lineTotal}}
{{/each}}--------------------------------
Subtotal: {{subtotal}} {{currency}}
{{#taxRate}}VAT ({{taxRate}}%): {{taxAmount}} {{currency}}
{{/taxRate}}TOTAL: {{total}} {{currency}}
{{#payments}}--------------------------------
{{#each payments}}{{method}}: {{amount}}
{{/each}}{{/payments}}{{#notes}}--------------------------------
{{notes}}
{{/notes}}{{#includeQrImage}}<img class="qr" src="{{qrImage}}" alt=""/>
{{/includeQrImage}}Thank you for your visit!
Printed {{printedAt}}
`

const receiptAR = `{{organizationName}}
{{organizationAddress}}
{{#organizationPhone}}هاتف: {{organizationPhone}}
{{/organizationPhone}}{{#organizationTaxNumber}}الرقم الضريبي: {{organizationTaxNumber}}
{{/organizationTaxNumber}}--------------------------------
إيصال {{documentNumber}}
التاريخ: {{issueDate}}
--------------------------------
{{#each items}}{{name}}
  {{quantity}} x {{unitPrice}}   {{lineTotal}}
{{/each}}--------------------------------
المجموع الفرعي: {{subtotal}} {{currency}}
{{#taxRate}}ضريبة القيمة المضافة ({{taxRate}}%): {{taxAmount}} {{currency}}
{{/taxRate}}الإجمالي: {{total}} {{currency}}
{{#payments}}--------------------------------
{{#each payments}}{{method}}: {{amount}}
{{/each}}{{/payments}}{{#notes}}--------------------------------
{{notes}}
{{/notes}}{{#includeQrImage}}<img class="qr" src="{{qrImage}}" alt=""/>
{{/includeQrImage}}شكراً لزيارتكم!
طبع في {{printedAt}}
`

const salesInvoiceEN = `{{organizationName}}
{{organizationAddress}}
{{#organizationPhone}}Tel: {{organizationPhone}} {{/organizationPhone}}{{#organizationEmail}}Email: {{organizationEmail}}{{/organizationEmail}}
VAT No: {{organizationTaxNumber}}

TAX INVOICE {{documentNumber}}
Issue date: {{issueDate}}
{{#dueDate}}Due date: {{dueDate}}
{{/dueDate}}
Billed to: {{counterpartyName}}
{{#counterpartyAddress}}{{counterpartyAddress}}
{{/counterpartyAddress}}{{#counterpartyTaxNumber}}VAT No: {{counterpartyTaxNumber}}
{{/counterpartyTaxNumber}}
{{#each items}}{{name}}{{#description}} - {{description}}{{/description}}
    {{quantity}} x {{unitPrice}}   {{lineTotal}} {{currency}}
{{/each}}
Subtotal: {{subtotal}} {{currency}}
{{#taxRate}}VAT ({{taxRate}}%): {{taxAmount}} {{currency}}
{{/taxRate}}Total: {{total}} {{currency}}
{{#payments}}Paid: {{paidTotal}} {{currency}}
{{#each payments}}  {{method}}: {{amount}}
{{/each}}Balance due: {{balanceDue}} {{currency}}
{{/payments}}{{#notes}}
{{notes}}
{{/notes}}{{#includeQrImage}}<img class="qr" src="{{qrImage}}" alt=""/>
{{/includeQrImage}}`

const salesInvoiceAR = `{{organizationName}}
{{organizationAddress}}
{{#organizationPhone}}هاتف: {{organizationPhone}} {{/organizationPhone}}{{#organizationEmail}}البريد: {{organizationEmail}}{{/organizationEmail}}
الرقم الضريبي: {{organizationTaxNumber}}

فاتورة ضريبية {{documentNumber}}
تاريخ الإصدار: {{issueDate}}
{{#dueDate}}تاريخ الاستحقاق: {{dueDate}}
{{/dueDate}}
العميل: {{counterpartyName}}
{{#counterpartyAddress}}{{counterpartyAddress}}
{{/counterpartyAddress}}{{#counterpartyTaxNumber}}الرقم الضريبي: {{counterpartyTaxNumber}}
{{/counterpartyTaxNumber}}
{{#each items}}{{name}}{{#description}} - {{description}}{{/description}}
    {{quantity}} x {{unitPrice}}   {{lineTotal}} {{currency}}
{{/each}}
المجموع الفرعي: {{subtotal}} {{currency}}
{{#taxRate}}ضريبة القيمة المضافة ({{taxRate}}%): {{taxAmount}} {{currency}}
{{/taxRate}}الإجمالي: {{total}} {{currency}}
{{#payments}}المدفوع: {{paidTotal}} {{currency}}
{{#each payments}}  {{method}}: {{amount}}
{{/each}}المتبقي: {{balanceDue}} {{currency}}
{{/payments}}{{#notes}}
{{notes}}
{{/notes}}{{#includeQrImage}}<img class="qr" src="{{qrImage}}" alt=""/>
{{/includeQrImage}}`

const purchaseInvoiceEN = `{{organizationName}}
PURCHASE INVOICE {{documentNumber}}
Issue date: {{issueDate}}
{{#dueDate}}Due date: {{dueDate}}
{{/dueDate}}
Supplier: {{counterpartyName}}
{{#counterpartyAddress}}{{counterpartyAddress}}
{{/counterpartyAddress}}{{#counterpartyTaxNumber}}VAT No: {{counterpartyTaxNumber}}
{{/counterpartyTaxNumber}}
{{#each items}}{{name}}{{#description}} - {{description}}{{/description}}
    {{quantity}} x {{unitPrice}}   {{lineTotal}} {{currency}}
{{/each}}
Subtotal: {{subtotal}} {{currency}}
{{#taxRate}}VAT ({{taxRate}}%): {{taxAmount}} {{currency}}
{{/taxRate}}Total: {{total}} {{currency}}
{{#payments}}Paid: {{paidTotal}} {{currency}}
Balance due: {{balanceDue}} {{currency}}
{{/payments}}{{#notes}}
{{notes}}
{{/notes}}`

const purchaseInvoiceAR = `{{organizationName}}
فاتورة مشتريات {{documentNumber}}
تاريخ الإصدار: {{issueDate}}
{{#dueDate}}تاريخ الاستحقاق: {{dueDate}}
{{/dueDate}}
المورد: {{counterpartyName}}
{{#counterpartyAddress}}{{counterpartyAddress}}
{{/counterpartyAddress}}{{#counterpartyTaxNumber}}الرقم الضريبي: {{counterpartyTaxNumber}}
{{/counterpartyTaxNumber}}
{{#each items}}{{name}}{{#description}} - {{description}}{{/description}}
    {{quantity}} x {{unitPrice}}   {{lineTotal}} {{currency}}
{{/each}}
المجموع الفرعي: {{subtotal}} {{currency}}
{{#taxRate}}ضريبة القيمة المضافة ({{taxRate}}%): {{taxAmount}} {{currency}}
{{/taxRate}}الإجمالي: {{total}} {{currency}}
{{#payments}}المدفوع: {{paidTotal}} {{currency}}
المتبقي: {{balanceDue}} {{currency}}
{{/payments}}{{#notes}}
{{notes}}
{{/notes}}`

const quoteEN = `{{organizationName}}
{{organizationAddress}}
{{#organizationPhone}}Tel: {{organizationPhone}}
{{/organizationPhone}}
QUOTE {{documentNumber}}
Date: {{issueDate}}
{{#dueDate}}Valid until: {{dueDate}}
{{/dueDate}}
Prepared for: {{counterpartyName}}

{{#each items}}{{name}}{{#description}} - {{description}}{{/description}}
    {{quantity}} x {{unitPrice}}   {{lineTotal}} {{currency}}
{{/each}}
Subtotal: {{subtotal}} {{currency}}
{{#taxRate}}VAT ({{taxRate}}%): {{taxAmount}} {{currency}}
{{/taxRate}}Total: {{total}} {{currency}}
{{#notes}}
{{notes}}
{{/notes}}This quote is not an invoice.`

const quoteAR = `{{organizationName}}
{{organizationAddress}}
{{#organizationPhone}}هاتف: {{organizationPhone}}
{{/organizationPhone}}
عرض سعر {{documentNumber}}
التاريخ: {{issueDate}}
{{#dueDate}}صالح حتى: {{dueDate}}
{{/dueDate}}
مقدم إلى: {{counterpartyName}}

{{#each items}}{{name}}{{#description}} - {{description}}{{/description}}
    {{quantity}} x {{unitPrice}}   {{lineTotal}} {{currency}}
{{/each}}
المجموع الفرعي: {{subtotal}} {{currency}}
{{#taxRate}}ضريبة القيمة المضافة ({{taxRate}}%): {{taxAmount}} {{currency}}
{{/taxRate}}الإجمالي: {{total}} {{currency}}
{{#notes}}
{{notes}}
{{/notes}}هذا عرض سعر وليس فاتورة.`

type builtinDef struct {
	kind    document.DocKind
	locale  document.Locale
	name    string
	profile document.PaperProfile
	content string
}

func builtinDefs() []builtinDef {
	return []builtinDef{
		{document.DocKindReceipt, document.LocaleEnglish, "receipt-en-80mm", document.PaperProfileThermal80MM, receiptEN},
		{document.DocKindReceipt, document.LocaleArabic, "receipt-ar-80mm", document.PaperProfileThermal80MM, receiptAR},
		{document.DocKindSalesInvoice, document.LocaleEnglish, "sales-invoice-en-a4", document.PaperProfileA4, salesInvoiceEN},
		{document.DocKindSalesInvoice, document.LocaleArabic, "sales-invoice-ar-a4", document.PaperProfileA4, salesInvoiceAR},
		{document.DocKindPurchaseInvoice, document.LocaleEnglish, "purchase-invoice-en-a4", document.PaperProfileA4, purchaseInvoiceEN},
		{document.DocKindPurchaseInvoice, document.LocaleArabic, "purchase-invoice-ar-a4", document.PaperProfileA4, purchaseInvoiceAR},
		{document.DocKindQuote, document.LocaleEnglish, "quote-en-a4", document.PaperProfileA4, quoteEN},
		{document.DocKindQuote, document.LocaleArabic, "quote-ar-a4", document.PaperProfileA4, quoteAR},
	}
}
