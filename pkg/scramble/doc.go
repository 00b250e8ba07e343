/*
Package scramble provides the reversible byte scrambler used to keep app payloads out of plain sight.

Like the xor package it builds on, this is NOT encryption.
The key is a constant compiled into the binary, and every step is trivially reversible by anyone holding a copy of it.
It only hides data from casual inspection, and must not be presented as confidentiality.

# How it works:

Scramble runs three steps over a copy of the input:
  - Each byte is rotated left by 3 bits.
  - The buffer is reversed end to end.
  - A positional XOR screen is applied: output byte i is XORed with key[i mod len(key)] and the low byte of i.

Unscramble performs the same steps in reverse order, rotating right by 3 at the end.
*/
package scramble
