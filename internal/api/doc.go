// Package api implements the HTTP surface of the happiness rankings
// service: the request pipeline of composable gates, the closed
// condition taxonomy that translates every failure into a stable
// response, and the terminal handlers that perform the data operations.
package api
