// Package docs holds the OpenAPI description of the ledger HTTP API served
// under /swagger. It is kept in step with the handler annotations by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List active accounts",
                "parameters": [
                    {"type": "string", "description": "Account type filter", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListAccountsResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create a new account",
                "parameters": [
                    {"description": "Account to create", "name": "account", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateAccountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Code or name already taken", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/accounts/seed": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create the default chart of accounts, skipping existing codes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListAccountsResponse"}}
                }
            }
        },
        "/accounts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get an account by ID",
                "parameters": [{"$ref": "#/parameters/accountID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Update an account",
                "description": "Changes code, name, description or type. The type is fixed once the account has postings.",
                "parameters": [
                    {"$ref": "#/parameters/accountID"},
                    {"description": "Account details to update", "name": "account", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateAccountRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Code or name already taken", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Type change on an account with postings", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Deactivate an account, freezing its balance",
                "parameters": [{"$ref": "#/parameters/accountID"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/accounts/{id}/balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Current balance and last transaction date",
                "parameters": [{"$ref": "#/parameters/accountID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountBalanceResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/accounts/{id}/statement": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Account statement with opening, running and closing balances",
                "parameters": [
                    {"$ref": "#/parameters/accountID"},
                    {"$ref": "#/parameters/startDate"},
                    {"$ref": "#/parameters/endDate"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountStatementResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/accounts/{id}/ledger": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Lines posted to one account, oldest first",
                "parameters": [
                    {"$ref": "#/parameters/accountID"},
                    {"$ref": "#/parameters/startDate"},
                    {"$ref": "#/parameters/endDate"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"lines": {"type": "array", "items": {"$ref": "#/definitions/dto.LedgerLineResponse"}}}}}
                }
            }
        },
        "/journal-entries": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "List journal entries, newest first",
                "parameters": [
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 50, max 100)", "name": "pageSize", "in": "query"},
                    {"type": "string", "description": "Transaction type filter", "name": "transactionType", "in": "query"},
                    {"type": "string", "description": "Account filter", "name": "accountId", "in": "query"},
                    {"$ref": "#/parameters/startDate"},
                    {"$ref": "#/parameters/endDate"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListJournalEntriesResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Post a balanced journal entry",
                "parameters": [
                    {"description": "Entry to post", "name": "entry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateJournalEntryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}},
                    "400": {"description": "Invalid or unbalanced entry", "schema": {"$ref": "#/definitions/unbalancedResponse"}},
                    "404": {"description": "Unknown account", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Ledger busy, retryable", "schema": {"$ref": "#/definitions/busyResponse"}},
                    "422": {"description": "Inactive account", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "429": {"description": "Rate limit exceeded"}
                }
            }
        },
        "/journal-entries/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Get a journal entry with its lines",
                "parameters": [{"type": "string", "description": "Entry ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}},
                    "404": {"description": "Entry not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/journal-entries/{id}/reverse": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal"],
                "summary": "Post the reversal of an entry",
                "parameters": [{"type": "string", "description": "Entry ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}},
                    "404": {"description": "Entry not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Already reversed, or a reversal itself", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/postings/payments": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["postings"],
                "summary": "Debit the receiving account and credit the paying one",
                "parameters": [{"name": "payment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecordPaymentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}}}
            }
        },
        "/postings/adjustments": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["postings"],
                "summary": "Post to an account with the adjustment account as balancing leg",
                "parameters": [{"name": "adjustment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecordAdjustmentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}}}
            }
        },
        "/postings/sales": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["postings"],
                "summary": "Post a sale with cash received, receivable shortfall and change given",
                "parameters": [{"name": "sale", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecordSaleRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}}}
            }
        },
        "/postings/expenses": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["postings"],
                "summary": "Debit an expense account and credit cash",
                "parameters": [{"name": "expense", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecordExpenseRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}}}
            }
        },
        "/ledger/general": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "All entries in a transaction date range, oldest first",
                "parameters": [{"$ref": "#/parameters/startDate"}, {"$ref": "#/parameters/endDate"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/entriesResponse"}}}
            }
        },
        "/ledger/day-book": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Entries recorded on a calendar day",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD, defaults to today", "name": "date", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/entriesResponse"}}}
            }
        },
        "/reports/trial-balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Get trial balance",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD, defaults to today", "name": "asOf", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TrialBalanceResponse"}}}
            }
        }
    },
    "parameters": {
        "accountID": {"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true},
        "startDate": {"type": "string", "description": "YYYY-MM-DD", "name": "startDate", "in": "query"},
        "endDate": {"type": "string", "description": "YYYY-MM-DD", "name": "endDate", "in": "query"}
    },
    "definitions": {
        "errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "unbalancedResponse": {"type": "object", "properties": {"error": {"type": "string"}, "totalDebit": {"type": "string"}, "totalCredit": {"type": "string"}}},
        "busyResponse": {"type": "object", "properties": {"error": {"type": "string"}, "retryable": {"type": "boolean"}}},
        "entriesResponse": {"type": "object", "properties": {"entries": {"type": "array", "items": {"$ref": "#/definitions/dto.JournalEntryResponse"}}}},
        "dto.CreateAccountRequest": {
            "type": "object",
            "required": ["code", "name", "accountType"],
            "properties": {
                "code": {"type": "string", "maxLength": 20},
                "name": {"type": "string", "maxLength": 100},
                "accountType": {"type": "string", "enum": ["ASSET", "LIABILITY", "EQUITY", "INCOME", "EXPENSE"]},
                "description": {"type": "string", "maxLength": 500}
            }
        },
        "dto.UpdateAccountRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "maxLength": 20},
                "name": {"type": "string", "maxLength": 100},
                "accountType": {"type": "string", "enum": ["ASSET", "LIABILITY", "EQUITY", "INCOME", "EXPENSE"]},
                "description": {"type": "string", "maxLength": 500}
            }
        },
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "accountType": {"type": "string"},
                "description": {"type": "string"},
                "balance": {"type": "string"},
                "isActive": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "createdBy": {"type": "string"},
                "lastUpdatedAt": {"type": "string"},
                "lastUpdatedBy": {"type": "string"}
            }
        },
        "dto.ListAccountsResponse": {"type": "object", "properties": {"accounts": {"type": "array", "items": {"$ref": "#/definitions/dto.AccountResponse"}}}},
        "dto.AccountBalanceResponse": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "accountName": {"type": "string"},
                "balance": {"type": "string"},
                "lastTransactionDate": {"type": "string"}
            }
        },
        "dto.JournalLineRequest": {
            "type": "object",
            "required": ["accountId", "side", "amount"],
            "properties": {
                "accountId": {"type": "string"},
                "side": {"type": "string", "enum": ["DEBIT", "CREDIT"]},
                "amount": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "dto.CreateJournalEntryRequest": {
            "type": "object",
            "required": ["transactionType", "lines"],
            "properties": {
                "transactionType": {"type": "string", "enum": ["SALE", "PURCHASE", "PAYMENT", "RECEIPT", "ADJUSTMENT", "OPENING_BALANCE", "CLOSING", "EXPENSE"]},
                "description": {"type": "string"},
                "transactionDate": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/dto.JournalLineRequest"}},
                "referenceId": {"type": "string"},
                "referenceType": {"type": "string"}
            }
        },
        "dto.JournalLineResponse": {
            "type": "object",
            "properties": {
                "lineID": {"type": "string"},
                "accountID": {"type": "string"},
                "accountCode": {"type": "string"},
                "accountName": {"type": "string"},
                "accountType": {"type": "string"},
                "side": {"type": "string"},
                "amount": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "dto.JournalEntryResponse": {
            "type": "object",
            "properties": {
                "entryID": {"type": "string"},
                "entryNumber": {"type": "string"},
                "transactionType": {"type": "string"},
                "description": {"type": "string"},
                "transactionDate": {"type": "string"},
                "totalAmount": {"type": "string"},
                "referenceID": {"type": "string"},
                "referenceType": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/dto.JournalLineResponse"}},
                "createdAt": {"type": "string"},
                "createdBy": {"type": "string"}
            }
        },
        "dto.ListJournalEntriesResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/dto.JournalEntryResponse"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "dto.RecordPaymentRequest": {
            "type": "object",
            "required": ["fromAccountId", "toAccountId", "amount"],
            "properties": {
                "fromAccountId": {"type": "string"},
                "toAccountId": {"type": "string"},
                "amount": {"type": "string"},
                "description": {"type": "string"},
                "transactionDate": {"type": "string"}
            }
        },
        "dto.RecordAdjustmentRequest": {
            "type": "object",
            "required": ["accountId", "amount", "side"],
            "properties": {
                "accountId": {"type": "string"},
                "amount": {"type": "string"},
                "side": {"type": "string", "enum": ["DEBIT", "CREDIT"]},
                "description": {"type": "string"},
                "transactionDate": {"type": "string"}
            }
        },
        "dto.RecordSaleRequest": {
            "type": "object",
            "required": ["saleId", "totalAmount", "paidAmount"],
            "properties": {
                "saleId": {"type": "string"},
                "totalAmount": {"type": "string"},
                "paidAmount": {"type": "string"},
                "transactionDate": {"type": "string"}
            }
        },
        "dto.RecordExpenseRequest": {
            "type": "object",
            "required": ["expenseAccountId", "amount", "description"],
            "properties": {
                "expenseAccountId": {"type": "string"},
                "amount": {"type": "string"},
                "description": {"type": "string"},
                "transactionDate": {"type": "string"},
                "referenceId": {"type": "string"}
            }
        },
        "dto.LedgerLineResponse": {
            "type": "object",
            "properties": {
                "entryID": {"type": "string"},
                "entryNumber": {"type": "string"},
                "transactionType": {"type": "string"},
                "transactionDate": {"type": "string"},
                "description": {"type": "string"},
                "side": {"type": "string"},
                "amount": {"type": "string"},
                "runningBalance": {"type": "string"}
            }
        },
        "dto.AccountStatementResponse": {
            "type": "object",
            "properties": {
                "account": {"$ref": "#/definitions/dto.AccountResponse"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "openingBalance": {"type": "string"},
                "closingBalance": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/dto.LedgerLineResponse"}}
            }
        },
        "dto.TrialBalanceRowResponse": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "accountCode": {"type": "string"},
                "accountName": {"type": "string"},
                "accountType": {"type": "string"},
                "debit": {"type": "string"},
                "credit": {"type": "string"}
            }
        },
        "dto.TrialBalanceResponse": {
            "type": "object",
            "properties": {
                "asOf": {"type": "string"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/dto.TrialBalanceRowResponse"}},
                "totals": {"type": "object", "properties": {"debit": {"type": "string"}, "credit": {"type": "string"}}},
                "isBalanced": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bookkeeping Core API",
	Description:      "Double-entry ledger: accounts, journal entries, postings and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
