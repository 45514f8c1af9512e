// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含工作階段 token 驗證與請求日誌兩個中間件，
// 供 api 套件在路由群組上掛載。
package middleware
