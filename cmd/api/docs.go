package main

// @title           MoneyWise Assistente API
// @version         1.0
// @description     Assistente de voz e texto para pequenos comércios: clientes, produtos, fiados e caderno de caixa
// @termsOfService  http://swagger.io/terms/

// @contact.name   Suporte MoneyWise
// @contact.email  suporte@moneywise.com.br

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
