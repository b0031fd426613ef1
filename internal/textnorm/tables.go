package textnorm

// simplifiedToTraditional covers the simplified characters that appear in
// Hong Kong and mainland channel names. Characters shared by both scripts
// are left out.
var simplifiedToTraditional = map[rune]rune{
	'无': '無', '线': '線', '闻': '聞', '电': '電', '视': '視', '卫': '衛',
	'凤': '鳳', '资': '資', '讯': '訊', '华': '華', '语': '語', '经': '經',
	'财': '財', '体': '體', '乐': '樂', '剧': '劇', '综': '綜', '艺': '藝',
	'国': '國', '际': '際', '频': '頻', '亚': '亞', '儿': '兒', '娱': '娛',
	'动': '動', '画': '畫', '纪': '紀', '录': '錄', '实': '實', '东': '東',
	'龙': '龍', '马': '馬', '广': '廣', '场': '場', '开': '開', '会': '會',
	'条': '條', '员': '員', '门': '門', '环': '環', '岛': '島', '湾': '灣',
	'们': '們', '时': '時', '间': '間', '专': '專', '业': '業', '汇': '匯',
	'丰': '豐', '万': '萬', '与': '與', '为': '為', '发': '發', '历': '歷',
	'学': '學', '习': '習', '军': '軍', '农': '農', '戏': '戲', '级': '級',
	'标': '標', '网': '網', '络': '絡', '数': '數', '码': '碼', '车': '車',
	'运': '運', '赛': '賽', '篮': '籃', '兴': '興', '游': '遊', '气': '氣',
	'观': '觀', '众': '眾', '优': '優', '选': '選', '购': '購', '贸': '貿',
	'报': '報', '织': '織', '辑': '輯', '译': '譯', '听': '聽', '说': '說',
	'连': '連', '续': '續', '单': '單', '双': '雙', '个': '個', '这': '這',
	'来': '來', '后': '後', '么': '麼', '两': '兩', '点': '點', '对': '對',
	'长': '長', '园': '園', '厅': '廳', '韩': '韓', '鲜': '鮮', '欧': '歐',
	'罗': '羅', '纬': '緯', '凯': '凱', '丽': '麗', '飞': '飛', '测': '測',
	'试': '試', '备': '備', '闽': '閩', '粤': '粵', '汉': '漢', '邮': '郵',
	'银': '銀', '图': '圖', '乡': '鄉', '晋': '晉', '宁': '寧', '辽': '遼',
}
