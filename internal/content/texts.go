package content

// Built-in texts. The prayers are from the 2014 Book of Praise; scripture
// sentences follow the English Standard Version.
const (
	defaultMorningPrayer = "Merciful Father, we thank you that in your great faithfulness you kept watch over us during this past night. " +
		"Strengthen and guide us by your Holy Spirit, that we may use this new day and all the days of our life in holiness and righteousness. " +
		"Grant that we in all our undertakings may always have your glory foremost in our minds. " +
		"May we always work in such a manner that we expect all results and fruits of our work from your generous hand alone. " +
		"We ask that you will graciously forgive all our sins according to your promise, for the sake of the passion and blood of our Lord Jesus Christ. " +
		"Through your grace we are heartily sorry for all our transgressions. " +
		"Illumine our hearts, that we may lay aside all works of darkness and as children of light may walk in the light and live a new life in all godliness. " +
		"Bless the proclamation of your divine Word here and in the mission fields. " +
		"Strengthen all faithful labourers in your vineyard. " +
		"We pray for those whom you have set over us, that as servants of you, the King of kings and Lord of lords, they may rule according to the calling you give them. " +
		"Give endurance to all who are persecuted because of their faith and deliver them from their enemies. " +
		"Destroy all the works of the devil. Comfort the distressed. " +
		"Show your mercy and help to all who call upon your holy name in sickness and other trials of life. " +
		"Deal with us and with all your people according to your grace in Christ Jesus our Lord, who assured us that you will do whatever we ask in his name. " +
		"Amen."

	defaultEveningPrayer = "Merciful God, in whom is no darkness at all, we come before you at the end of this day. " +
		"We thank you that you have given us strength for our daily work, and have guided us safely through this day. " +
		"Bless what was good in our labour and conduct. " +
		"Since you ordained that man should labour during the day and rest at night, we pray you to give us peaceful and undisturbed rest so that we may be able to take up our daily task again. " +
		"Command your angels to guard us and cause your face to shine upon us. " +
		"We cast all our anxieties on you, for you take care of us. " +
		"Control our sleep and rule our hearts, in order that we may not be defiled in any way but may glorify you even in our nightly rest. " +
		"Defend and protect us against all assaults of the devil and take us into your divine protection. " +
		"We confess that we did not spend this day without grievously sinning against you. " +
		"In your mercy please cover our sins as you cover the earth in the darkness of the night. " +
		"Grant comfort and rest to all who are ill, bowed down with grief, or afflicted with spiritual distress. " +
		"Your steadfast love, O Lord, endures forever. Do not abandon the works of your hands. " +
		"All this we ask in the name of Jesus Christ our Lord. Amen."

	defaultVotum = "Our help is in the name of the Lord, who made heaven and earth.\n" +
		"Grace to you and peace from God our Father and the Lord Jesus Christ."

	defaultSummaryOfLaw = "You shall love the Lord your God with all your heart and with all your soul " +
		"and with all your mind... You shall love your neighbor as yourself. " +
		"On these two commandments depend all the Law and the Prophets."

	defaultAssurance = "If we confess our sins, he is faithful and just to forgive us our sins " +
		"and to cleanse us from all unrighteousness."

	defaultBenediction = "The grace of the Lord Jesus Christ and the love of God and the fellowship " +
		"of the Holy Spirit be with you all."

	defaultAttribution = "For personal use only. All Scriptural quotations are taken from the " +
		"English Standard Version. Hymn numbers and prayers are taken from the Book of Praise " +
		"of the Canadian Reformed churches."
)
