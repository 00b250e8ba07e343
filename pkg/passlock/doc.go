/*
Package passlock provides AES-256-GCM sealing of app data, either with a raw key or a key derived from a user-provided passphrase.

Unlike the xor and scramble packages, this is real encryption.

# Raw keys:

GenerateRandomKey creates a 32 byte key from the OS entropy pool.
Seal encrypts a payload with that key and prefixes the random nonce, and Open reverses it.
Keeping the key safe is up to the caller.

# Passphrases:

A key and salt is generated from the given passphrase. The salt is appended to the encrypted payload so the same key can be derived later given the same passphrase.
Scrypt is memory and CPU hard, so it's impractical to brute force the salt to get the original passphrase, provided that sufficient tuning values are provided to the KeyGenerator.

The key, salt, and plaintext are passed to the Lock function to encrypt the payload and append the salt to it.
The key is recovered from the encrypted payload by passing the original passphrase and the payload to KeyGenerator.DeriveKey.
The key and encrypted payload are passed to the Unlock function to decrypt the payload and return the original plain text.

LockWithPassphrase and UnlockWithPassphrase do all of this in one call, and store the KeyGenerator settings in a small header so they don't have to be known at unlock time.

# Password hashes:

HashPassword produces the iterated SHA-256 password digest the app's backend expects.
It's kept for compatibility. Prefer a KeyGenerator for anything new, since scrypt is far more resistant to cracking.

# General guidelines:
  - It's possible to customize the CPU cost, iteration count, and relative block size parameters directly for key generation. If you're not an expert, then don't use SetIterations, SetCPUCost, or SetRelativeBlockSize.
  - Both short and long delay iteration GeneratorOpt functions are provided, choose the correct iterations for your use-case using either SetLongDelayIterations or SetShortDelayIterations.
  - This method of encryption (AES256GCM) supports encrypting and authenticating at most about 64GB at a time.
  - When deriving the key from an encrypted payload, make sure that the same KeyGenerator settings are used. Not doing so will likely result in an incorrect key.
*/
package passlock
