// Package api 處理 HTTP 請求路由和處理。
//
// 這個包把前端的檢視意圖（開關對話框、切換選擇器、搜尋、頁面動作）
// 轉換為 service 套件的工作階段呼叫，並以 JSON 回傳頁面的新狀態。
// 事件則透過 SSE 或 WebSocket 推送。
package api
