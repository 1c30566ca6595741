// Copyright 2025 The Ratcore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ----------------

package zrand

// defSubtract is the virgin subtractive 100 table. The values trace back
// to the digitization of a chaotic source; they are never changed, only
// copied.
var defSubtract = [100]uint64{
	0xc8c0370c7db7dc19, 0x738e33b940a06fbb,
	0x481abb76a859ed2b, 0x74106bb39ccdccb5,
	0x05a8eeb5c3173bfc, 0xefd5100d5a02e577,
	0xa69271f74030b24a, 0x641282fc16fe22c5,
	0x7aa7267c40438da3, 0x1fdf4abdc2d878d1,
	0xd9899e7a95702379, 0x5ea8e217d02d7f08,
	0x770587fe4d47a353, 0xde7d1bdd0a33a2b8,
	0x4378c3c5900e7c45, 0x77c9447819a514f9,
	0xfc5edb22843d1d32, 0x4fc42ce5e8ee5e6e,
	0xc938713c8488013e, 0x6a318f0320ab0cac,
	0x73e6d1a3ffc8bff3, 0x0cd3232a8ca96aa7,
	0x605c8036905f770d, 0x4d037b008b8d04a2,
	0x1ed81965cb277294, 0x408d9c477a254ff3,
	0x8b68587ae26c7377, 0xcff191a48a48832f,
	0x12d3df1d8aeb6fe6, 0xb2bf907e1feda37a,
	0x4e5f77193bb5f39f, 0x33ebcf6f8f5d1581,
	0x203c8e48d33654eb, 0x68d3656ef19c8a4e,
	0x3ec20b04986eb2af, 0x5d73a03b062c3841,
	0x836ce7095d4e49eb, 0x2310bc40c3f49221,
	0x3868ee48a6d0cbf6, 0x67578aa64a43deb1,
	0x6e3426c1150dfc26, 0xc541ccaa3131be30,
	0xf7e57432cec7aab2, 0x2b35de998cb3c873,
	0x7b9f77648663a5d7, 0x23b00e6aa771e5a6,
	0x859c775ca9985d05, 0x99636ea16b692f1f,
	0x8700ac703730800d, 0x461425024298a753,
	0xea4a411b809e955f, 0x3119ad4033709dfb,
	0xb76a6c6e5f01cb7c, 0x6109dc8a15984eaf,
	0x5d686db9a5ca9505, 0x8e80d7613b7e6add,
	0x79cbd718de6f6fd3, 0x40e9cd151da0f699,
	0xe82158bab24f312d, 0x79a4c927f5e5c36b,
	0xc25247c9a0039333, 0x936871161766d81d,
	0x3c6a03b4a6741327, 0xc8a7b6e8c002f29a,
	0x0e2a67c67bbd5ea3, 0x0929042d441eabc1,
	0x7dbe232a25e82085, 0x8cfb26e544fbac3d,
	0x8e40384d388ab983, 0x48dc1230554632f8,
	0xab405048ab492397, 0x21c9e2f5a118e387,
	0x484d1a8c343b61b5, 0xd49e3decab256f26,
	0xe615c7fd78f2d2e3, 0x8442cc33ce6cc2ed,
	0x0a3b93d844d4bbf6, 0x2d7e4efe9301de77,
	0x33711b76d8790d8a, 0xc07dc30e44df77e7,
	0xb9132ed09ddd508f, 0x45d06cf8c6fb43cc,
	0x22bed18ad585dd7b, 0x61c6cced10799ffa,
	0xd7f2393be4bd9aa9, 0x706753fbcfd55094,
	0xf65a6713ede6e446, 0x8bf6dfae47c0d5c3,
	0xfb4dfc179f7927d6, 0x12ebbc16e212c297,
	0x43c71283a00a954c, 0x8957087ae7bd40a5,
	0xb0859d7108344837, 0xfbf4b9a3aeb313f5,
	0x5e66e5bece81823a, 0x09a11c6e58ad6da1,
	0xc76f4316c608054f, 0xb582136146084099,
	0x4210008f17a725ed, 0xe5ff8912d347c481,
}

// initShuf is the shuffle table of the default generator state: the
// result of feeding 256 subtractive values from the virgin table through
// the shuffle loader.
var initShuf = [256]uint64{
	0x69a2296cec8abd57, 0x867e186999a6df81,
	0xc05ab96bd849a48a, 0x7eb3ce0cfa00554b,
	0x520d01f65a5a9acd, 0xd4ef1e3336022d81,
	0xaf44772bc6f84f70, 0x647e85a6a7c55173,
	0x26746cf1959df8d1, 0x98681a904db28abd,
	0xb146c969744c5cd2, 0x8ce69d1f706f88c2,
	0xfd12eac421b4a748, 0xf12e70fe2710eea5,
	0x0b8f78055901f2b5, 0x48860a764f2c115e,
	0x0edf6d2a30767e2c, 0x8a6d7dc5fce2713b,
	0x46a362ea4e0e2346, 0x6c369a0a359f5aa7,
	0xdfca81fe41def54e, 0x4b73381996c2bc4e,
	0x659e8b996f3f14f9, 0x8b97b93493d47e6f,
	0xa73a8704dfa10a55, 0x8d9eafe9b06503da,
	0x2556fb88f32336b0, 0xe71e9f751002a161,
	0x27a7be6e200af907, 0x1b9b734ed028e9a3,
	0x950cfeed4c0be0d3, 0xf4c416942536d275,
	0xf05a58e85687b76e, 0xba53ac0171a62d54,
	0x4b14cbcb285adc96, 0xfdf66eddb00a5557,
	0xbb43d58d185b6ea1, 0x905db9cdf355c9a6,
	0xfc3a07fc04429c8a, 0x65d7e365aa3a4f7e,
	0x2d284c18b243ac65, 0x72fba65d44e417fd,
	0x422d50b45c934805, 0xb62a6053d1587441,
	0xa5e71ce96f7ae035, 0x93abca2e595c8dd8,
	0x534231afe39afad5, 0x08d26cac12eaad56,
	0xec18bf8d7fb1b1c2, 0x3d28ea16faf6f09b,
	0xea357a7816697dd6, 0x51471ea1420f3f51,
	0x5e051aeb7f8946b4, 0x881be0970cf0524c,
	0xd558b25b1b31489e, 0x707d1a943a8b065c,
	0x37017e66568ff836, 0xb9cd627c24c2f747,
	0x1485549ffb1d9ff6, 0x308d32d9bdf2dc6f,
	0x4d4142cad543818a, 0x5d9c7aee87ebba43,
	0x81c5bdd8e17adb2f, 0x3dc9752ec8d8677a,
	0x66b086e6c34e4212, 0x3af7a90dc62b25e3,
	0xf8349f7935539315, 0x6bcfd9d5a22917f0,
	0x8639bb765f5ee517, 0xd3c5e3698095b092,
	0x8a33851e7eb44748, 0x5e29d443ea54bbcf,
	0x0f84651f4d59a834, 0x85040beaf1a5f951,
	0x3dba1c7498002078, 0x5d70712bf0b2cc15,
	0xfa3af8ebcce8e5a7, 0xfb3e223704bba57d,
	0x5d3b87858a950434, 0xce3112bdba3f8dcf,
	0x44904f55860d3051, 0xcec8fed44ed3e98b,
	0x4581698d25d01ea4, 0x11eb68289a9548e0,
	0x796cb4c6e911fac8, 0x2164cf26b5fd813e,
	0x4ac8e0f5d5de640f, 0xe9e757d78802ab4e,
	0x3c97de26f49dfcbd, 0xc604881b6ee6dbe6,
	0xa7c22a6e57d6154e, 0x234e2370877b3cc7,
	0xc0bdb72bdf1f8358, 0x6522e0fca95b7b55,
	0xba174c9022344162, 0x712c9b2d75d48867,
	0x240f7e92e59f3700, 0xe83cc2d4ad95d763,
	0x8509445a4336d717, 0xf1e572c5dfff1804,
	0xed10eb5d623232dd, 0x9205ea1bd4f957e8,
	0x4973a54f2ff062f5, 0x26b018f1e8c48cd5,
	0x56908401d1c7ed9f, 0x2e48937bdf89a247,
	0x9d53069b2be47129, 0x98069e3bc048a2b0,
	0xf25b7d651cd83f93, 0x2b004e6ce6f886c8,
	0xf618442a5c635935, 0xa502ab5c7198e052,
	0xc14241a4a6c41b0b, 0x720e845a7db9b18e,
	0x2abb13e94b713918, 0x90fc0c207f52467d,
	0x799c8ccd7868d348, 0xf4817ced912a0ea4,
	0xd68c0f4cc4903a57, 0xa3171f29e2b7934c,
	0xb1158baa0b4ccc22, 0xf5d8555349a29eda,
	0x59d1a078959442ef, 0xdb9b4a96a67fd518,
	0xcc7ca9eed2870636, 0x548f021cecf59920,
	0x25b7f4b6571bc8c5, 0x4fa527473a44f536,
	0xb246845fdf0ebdc2, 0xdd8d68ae42058793,
	0x3ba133289f6c39fb, 0x8bfdfbf37b6b42af,
	0xfb34c5ca7fb2b3b0, 0x2345dcecd428e32a,
	0x6891e850ad42b63e, 0x930642c8362c1381,
	0x13871e9b1886aff5, 0xd0cf2407482bda55,
	0x125b5fc95069bc31, 0x9b71d0a9f07dfa5d,
	0x55c044cc6712e524, 0xf0377358bb601978,
	0x152ad5f87fa51e8b, 0xe5ebf4789fcdd9af,
	0x3d78e18c66ebce7e, 0x8246db72f36aa83f,
	0xcc6ddc6d2c64c0a3, 0xa758d6870d91851e,
	0x24b20a6f9488ee36, 0xbe11ccdf09798197,
	0x11aca01599c1f4e3, 0x40e89e366437ac05,
	0xc8bfc7625af675f8, 0x6367c578b577e759,
	0x00380346615f0b74, 0xee964cc48de07d81,
	0x17f6ac16859d9261, 0x092f4a173a6e2f6c,
	0x79981a3db9024b95, 0x36db166004f7f540,
	0xc36252cf65a2f1c8, 0x705b6fde124c9bd2,
	0x31e58dda85db40ce, 0x6342b1a59f5e8d6d,
	0x5c2c67d0bd6d1d4d, 0x1fe5b46fba7e069d,
	0x21c46c6cac72e13c, 0xb80c5fd59eb8f52a,
	0x56c3aebfa74c92bc, 0xc1aff1fcbf8c4196,
	0x2b1df645754ad208, 0x5c734600d46eeb50,
	0xe0ff1b126a70a765, 0xd54164977a94547c,
	0x67b59d7c4ea35206, 0x53be7146779203b4,
	0x6b589fe5414026b8, 0x9e81016c3083bfee,
	0xb23526b93b4b7671, 0x4fa9ffb17ee300ba,
	0x6217e212ad05fb21, 0xf5b3fcd3b294e6c2,
	0xac040bbe216beb2a, 0x1f8d8a5471d0e78c,
	0xb6d15b419cfec96b, 0xc5477845d0508c78,
	0x5b486e81b4bba621, 0x90c35c94ef4c4121,
	0xefce7346f6a6bc55, 0xa27828d925bdb9bb,
	0xe3a53095a1f0b205, 0x1bfa6093d9f208ab,
	0xfb078f6a6842cdf4, 0x07806d7297133a38,
	0x2c6c901ba3ce9592, 0x1f0ab2cfebc1b789,
	0x2ce81415e2d03d5e, 0x7da45d5baa9f2417,
	0x3be4f76ddd800682, 0xdbf4e4a3364d72d3,
	0xb538cccf4fc59da5, 0xb0aa39d5487f66ec,
	0x2fd28dfd87927d3d, 0xd14e77f05900c6b1,
	0x2523fad25330c7b4, 0x991b5938d82368a4,
	0xb7c114432b9c1302, 0xdb842db61394b116,
	0x3641548d78ed26d8, 0x274fa8ef0a61dacf,
	0xa554ba63112df6f1, 0x7b7fe9856b50438d,
	0xc9fa0042bb63bbad, 0x3abf45d0e27f00da,
	0xd95faa159f87aabb, 0x4a95012e3488e7ae,
	0x1be2bdb90c642d04, 0x145c88818b4abf3e,
	0x7f9fb635544cf17f, 0xb8ab2f62cc78db70,
	0x8ee64bcdb4242f9a, 0xabd5285895dad129,
	0xbe722c2fccf31141, 0x7c330703575e26a9,
	0x45d3e3b3361b79e4, 0x241163a754b2e6a6,
	0x8f678d7df7cacb77, 0x988a68a483211d19,
	0x79599598ba7836f6, 0x4850c887eeda68bf,
	0xafa69a718052ce25, 0x8b21efc6bdd73573,
	0x89dbae18d0972493, 0x560776bf537d9454,
	0x3c009f78165310f2, 0xa36800210160c3af,
	0x3353ec3ca643bd40, 0x7e593f99911dab02,
	0x72d1ddd94f676e89, 0xfd18b8bd6b43c0ea,
	0x43cacef2ddbd697d, 0x2868a4d0acefe884,
	0x5f377b63a506f013, 0xeaa0975e05ca662b,
	0x3740e6b8eb433931, 0xce85df0008557948,
	0x784745fb547e33f9, 0x4a1fc5d4e5c6f598,
	0x85fa6fec768430a7, 0x990d0c24d2332a51,
	0x55245c2c33b676d5, 0xb1091519e2bcfa71,
	0x38521478d23a28d8, 0x9b794f899a573010,
	0x61d225e8699bb486, 0x21476d241c2158b0,
}
