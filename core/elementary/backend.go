package elementary

// Backend names the implementation compiled into this binary: "math" for the
// standard library or "soft" for the lambertw_softfloat build.
//
// The two backend files carry complementary build constraints, so exactly one
// of them is always compiled and no build can end up without sqrt64 and log64.
const Backend = backendName
