/*
Package gatekeeper decides which endpoints the app may talk to.

Connections must use https, and the URL host must match the allow-list exactly.
An allow-list entry of the form "*.example.com" admits any subdomain of example.com, but not example.com itself.
Matching is done on the parsed host name, so look-alike URLs such as https://firebaseio.com.evil.net or https://google.com@evil.net are refused.

ObfuscateEndpoint is a single byte XOR screen for keeping endpoint strings out of plain sight.
It's self-inverse, and is NOT encryption.
*/
package gatekeeper
