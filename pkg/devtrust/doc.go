/*
Package devtrust provides a best-effort check of whether the device looks like a production build.

This is a heuristic, NOT attestation.
Anyone with platform-level control can spoof the properties it reads, so a passing verdict proves nothing.
It's only useful for flagging obviously debuggable or insecure builds.
*/
package devtrust
